// controllers/service.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"petcare-catalog/models"
	"petcare-catalog/repository"
	"petcare-catalog/services"
	"petcare-catalog/utils"
)

// CreateVariationInput is one priced option supplied on service creation
type CreateVariationInput struct {
	Name  string           `json:"name" binding:"required,max=100"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	OrganizationID uuid.UUID              `json:"organizationId" binding:"required"`
	BranchID       *uuid.UUID             `json:"branchId"`
	Name           string                 `json:"name" binding:"required,max=200"`
	Description    string                 `json:"description" binding:"omitempty,max=2000"`
	TypeID         uuid.UUID              `json:"typeId" binding:"required"`
	Price          *decimal.Decimal       `json:"price"`
	ImageID        *uuid.UUID             `json:"imageId"`
	Variations     []CreateVariationInput `json:"variations" binding:"omitempty,dive"`
}

// UpdateVariationInput updates an existing variation when ID is given,
// otherwise creates a new one (name and price then required)
type UpdateVariationInput struct {
	ID       *uuid.UUID       `json:"id"`
	Name     *string          `json:"name" binding:"omitempty,max=100"`
	Price    *decimal.Decimal `json:"price"`
	IsActive *bool            `json:"isActive"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	BranchID           *uuid.UUID             `json:"branchId"`
	Name               *string                `json:"name" binding:"omitempty,max=200"`
	Description        *string                `json:"description" binding:"omitempty,max=2000"`
	TypeID             *uuid.UUID             `json:"typeId"`
	Price              models.OptionalDecimal `json:"price"`
	ImageID            *uuid.UUID             `json:"imageId"`
	IsActive           *bool                  `json:"isActive"`
	Variations         []UpdateVariationInput `json:"variations" binding:"omitempty,dive"`
	DeleteVariationIDs []uuid.UUID            `json:"deleteVariationIds"`
}

// ServiceFiltersInput is the query string for service listings
type ServiceFiltersInput struct {
	OrganizationID string `form:"organizationId" binding:"omitempty,uuid"`
	BranchID       string `form:"branchId" binding:"omitempty,uuid"`
	TypeID         string `form:"typeId" binding:"omitempty,uuid"`
	IsActive       *bool  `form:"isActive"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	Limit          int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type TypeRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type VariationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceResponse converts stored decimals to plain numbers at the boundary
type ServiceResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrganizationID uuid.UUID           `json:"organizationId"`
	BranchID       *uuid.UUID          `json:"branchId"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Type           TypeRefResponse     `json:"type"`
	Price          *float64            `json:"price"`
	ImageID        *uuid.UUID          `json:"imageId"`
	IsActive       bool                `json:"isActive"`
	Variations     []VariationResponse `json:"variations"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type PaginatedServicesResponse struct {
	Data            []ServiceResponse `json:"data"`
	Total           int64             `json:"total"`
	Page            int               `json:"page"`
	Limit           int               `json:"limit"`
	TotalPages      int               `json:"totalPages"`
	HasNextPage     bool              `json:"hasNextPage"`
	HasPreviousPage bool              `json:"hasPreviousPage"`
}

func toServiceResponse(service *models.Service) ServiceResponse {
	response := ServiceResponse{
		ID:             service.ID,
		OrganizationID: service.OrganizationID,
		BranchID:       service.BranchID,
		Name:           service.Name,
		Description:    service.Description,
		ImageID:        service.ImageID,
		IsActive:       service.IsActive,
		Variations:     make([]VariationResponse, 0, len(service.Variations)),
		CreatedAt:      service.CreatedAt,
		UpdatedAt:      service.UpdatedAt,
	}

	if service.Type != nil {
		response.Type = TypeRefResponse{ID: service.Type.ID, Name: service.Type.Name}
	} else {
		response.Type = TypeRefResponse{ID: service.TypeID}
	}

	if service.Price.Valid {
		price := service.Price.Decimal.InexactFloat64()
		response.Price = &price
	}

	for _, v := range service.Variations {
		response.Variations = append(response.Variations, VariationResponse{
			ID:        v.ID,
			Name:      v.Name,
			Price:     v.Price.InexactFloat64(),
			IsActive:  v.IsActive,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		})
	}
	return response
}

type ServiceController struct {
	service *services.CatalogService
}

func NewServiceController(service *services.CatalogService) *ServiceController {
	return &ServiceController{service: service}
}

func (ctrl *ServiceController) bindFilter(c *gin.Context) (repository.ServiceFilter, bool) {
	var input ServiceFiltersInput
	if err := c.ShouldBindQuery(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return repository.ServiceFilter{}, false
	}

	filter := repository.ServiceFilter{
		IsActive: input.IsActive,
		Page:     input.Page,
		Limit:    input.Limit,
	}
	if input.OrganizationID != "" {
		id := uuid.MustParse(input.OrganizationID)
		filter.OrganizationID = &id
	}
	if input.BranchID != "" {
		id := uuid.MustParse(input.BranchID)
		filter.BranchID = &id
	}
	if input.TypeID != "" {
		id := uuid.MustParse(input.TypeID)
		filter.TypeID = &id
	}
	return filter, true
}

func (ctrl *ServiceController) respondList(c *gin.Context, filter repository.ServiceFilter) {
	result, err := ctrl.service.List(filter)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	response := PaginatedServicesResponse{
		Data:            make([]ServiceResponse, 0, len(result.Data)),
		Total:           result.Total,
		Page:            result.Page,
		Limit:           result.Limit,
		TotalPages:      result.TotalPages,
		HasNextPage:     result.HasNextPage,
		HasPreviousPage: result.HasPreviousPage,
	}
	for i := range result.Data {
		response.Data = append(response.Data, toServiceResponse(&result.Data[i]))
	}
	c.JSON(http.StatusOK, response)
}

// ListServices returns a filtered, paginated catalog page
func (ctrl *ServiceController) ListServices(c *gin.Context) {
	filter, ok := ctrl.bindFilter(c)
	if !ok {
		return
	}
	ctrl.respondList(c, filter)
}

// ListOrganizationServices lists a single organization's services
func (ctrl *ServiceController) ListOrganizationServices(c *gin.Context) {
	organizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid organization ID format")
		return
	}

	filter, ok := ctrl.bindFilter(c)
	if !ok {
		return
	}
	filter.OrganizationID = &organizationID
	ctrl.respondList(c, filter)
}

// ListBranchServices lists a single branch's services
func (ctrl *ServiceController) ListBranchServices(c *gin.Context) {
	branchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid branch ID format")
		return
	}

	filter, ok := ctrl.bindFilter(c)
	if !ok {
		return
	}
	filter.BranchID = &branchID
	ctrl.respondList(c, filter)
}

// GetService retrieves a specific service by ID
func (ctrl *ServiceController) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := ctrl.service.Get(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServiceResponse(service))
}

// CreateService creates a new service for an organization
func (ctrl *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	variations := make([]services.VariationInput, 0, len(input.Variations))
	for _, v := range input.Variations {
		variations = append(variations, services.VariationInput{
			Name:  v.Name,
			Price: *v.Price,
		})
	}

	service, err := ctrl.service.Create(services.CreateServiceInput{
		OrganizationID: input.OrganizationID,
		BranchID:       input.BranchID,
		Name:           input.Name,
		Description:    input.Description,
		TypeID:         input.TypeID,
		Price:          input.Price,
		ImageID:        input.ImageID,
		Variations:     variations,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toServiceResponse(service))
}

// UpdateService updates an existing service and reconciles its variations
func (ctrl *ServiceController) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	variations := make([]services.UpdateVariationInput, 0, len(input.Variations))
	for _, v := range input.Variations {
		variations = append(variations, services.UpdateVariationInput{
			ID:       v.ID,
			Name:     v.Name,
			Price:    v.Price,
			IsActive: v.IsActive,
		})
	}

	service, err := ctrl.service.Update(id, services.UpdateServiceInput{
		BranchID:           input.BranchID,
		Name:               input.Name,
		Description:        input.Description,
		TypeID:             input.TypeID,
		Price:              input.Price,
		ImageID:            input.ImageID,
		IsActive:           input.IsActive,
		Variations:         variations,
		DeleteVariationIDs: input.DeleteVariationIDs,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServiceResponse(service))
}

// DeleteService hard deletes a service; variations go with it
func (ctrl *ServiceController) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
