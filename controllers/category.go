// controllers/category.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"petcare-catalog/services"
	"petcare-catalog/utils"
)

// CreateCategoryInput defines the expected JSON structure for creating a category
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"required,max=100"`
}

// UpdateCategoryInput defines the expected JSON structure for updating a category
type UpdateCategoryInput struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Slug *string `json:"slug" binding:"omitempty,max=100"`
}

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// ListCategories returns every category, name ascending
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.service.List()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListCategoriesWithTypes returns every category with its active types nested
func (ctrl *CategoryController) ListCategoriesWithTypes(c *gin.Context) {
	categories, err := ctrl.service.ListWithTypes()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a specific category by ID
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	category, err := ctrl.service.Get(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetCategoryBySlug retrieves a specific category by slug
func (ctrl *CategoryController) GetCategoryBySlug(c *gin.Context) {
	category, err := ctrl.service.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory creates a new category (admin)
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := ctrl.service.Create(services.CreateCategoryInput{
		Name: input.Name,
		Slug: input.Slug,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates an existing category (admin)
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := ctrl.service.Update(id, services.UpdateCategoryInput{
		Name: input.Name,
		Slug: input.Slug,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory hard deletes a category once nothing references it (admin)
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
