// controllers/service_type.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"petcare-catalog/services"
	"petcare-catalog/utils"
)

// CreateTypeInput defines the expected JSON structure for creating a type (admin)
type CreateTypeInput struct {
	Name       string    `json:"name" binding:"required,max=100"`
	Slug       string    `json:"slug" binding:"required,max=100"`
	CategoryID uuid.UUID `json:"categoryId" binding:"required"`
}

// SuggestTypeInput is the user-facing suggestion payload; the slug is
// derived from the name when omitted
type SuggestTypeInput struct {
	Name       string    `json:"name" binding:"required,max=100"`
	Slug       string    `json:"slug" binding:"omitempty,max=100"`
	CategoryID uuid.UUID `json:"categoryId" binding:"required"`
}

// UpdateTypeInput defines the expected JSON structure for updating a type (admin)
type UpdateTypeInput struct {
	Name       *string    `json:"name" binding:"omitempty,max=100"`
	Slug       *string    `json:"slug" binding:"omitempty,max=100"`
	CategoryID *uuid.UUID `json:"categoryId"`
}

type TypeController struct {
	service *services.TypeService
}

func NewTypeController(service *services.TypeService) *TypeController {
	return &TypeController{service: service}
}

// categoryFilter reads the optional ?categoryId= query parameter.
func categoryFilter(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("categoryId")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return nil, false
	}
	return &id, true
}

// ListTypes returns active types, optionally filtered by category
func (ctrl *TypeController) ListTypes(c *gin.Context) {
	categoryID, ok := categoryFilter(c)
	if !ok {
		return
	}

	types, err := ctrl.service.ListActive(categoryID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// ListAllTypes returns every type regardless of status (admin)
func (ctrl *TypeController) ListAllTypes(c *gin.Context) {
	categoryID, ok := categoryFilter(c)
	if !ok {
		return
	}

	types, err := ctrl.service.ListAll(categoryID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// ListPendingTypes returns suggestions waiting for review (admin)
func (ctrl *TypeController) ListPendingTypes(c *gin.Context) {
	types, err := ctrl.service.ListPending()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// GetType retrieves a specific type by ID
func (ctrl *TypeController) GetType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type ID format")
		return
	}

	serviceType, err := ctrl.service.Get(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceType)
}

// GetTypeBySlug retrieves a specific type by slug
func (ctrl *TypeController) GetTypeBySlug(c *gin.Context) {
	serviceType, err := ctrl.service.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceType)
}

// CreateType creates a new type in ACTIVE status (admin)
func (ctrl *TypeController) CreateType(c *gin.Context) {
	var input CreateTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceType, err := ctrl.service.Create(services.CreateTypeInput{
		Name:       input.Name,
		Slug:       input.Slug,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serviceType)
}

// SuggestType files a new type in PENDING status on behalf of the caller
func (ctrl *TypeController) SuggestType(c *gin.Context) {
	caller := utils.GetCaller(c)
	if caller.UserID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "User id is required")
		return
	}
	userID, err := uuid.Parse(caller.UserID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var input SuggestTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceType, err := ctrl.service.Suggest(services.CreateTypeInput{
		Name:       input.Name,
		Slug:       input.Slug,
		CategoryID: input.CategoryID,
	}, userID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serviceType)
}

// UpdateType updates an existing type (admin)
func (ctrl *TypeController) UpdateType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type ID format")
		return
	}

	var input UpdateTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceType, err := ctrl.service.Update(id, services.UpdateTypeInput{
		Name:       input.Name,
		Slug:       input.Slug,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceType)
}

// ApproveType transitions a pending suggestion to ACTIVE (admin)
func (ctrl *TypeController) ApproveType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type ID format")
		return
	}

	serviceType, err := ctrl.service.Approve(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceType)
}

// RejectType transitions a pending suggestion to REJECTED (admin)
func (ctrl *TypeController) RejectType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type ID format")
		return
	}

	serviceType, err := ctrl.service.Reject(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceType)
}

// DeleteType hard deletes a type once nothing references it (admin)
func (ctrl *TypeController) DeleteType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type ID format")
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
