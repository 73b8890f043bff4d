// services/catalog_service.go
package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"petcare-catalog/models"
	"petcare-catalog/repository"
	"petcare-catalog/utils"
)

const (
	msgPriceWithVariations = "Cannot set a price on the service itself when variations are present"
	msgNoPricingMode       = "Provide a service-level price or at least one variation with a price"
)

type VariationInput struct {
	Name  string
	Price decimal.Decimal
}

type CreateServiceInput struct {
	OrganizationID uuid.UUID
	BranchID       *uuid.UUID
	Name           string
	Description    string
	TypeID         uuid.UUID
	Price          *decimal.Decimal
	ImageID        *uuid.UUID
	Variations     []VariationInput
}

type UpdateVariationInput struct {
	// ID selects an existing variation for a partial update; entries without
	// an ID create a new variation and must carry Name and Price.
	ID       *uuid.UUID
	Name     *string
	Price    *decimal.Decimal
	IsActive *bool
}

type UpdateServiceInput struct {
	BranchID    *uuid.UUID
	Name        *string
	Description *string
	TypeID      *uuid.UUID
	// Price is tri-state: absent leaves the stored price alone, explicit
	// null clears it, a number sets it.
	Price              models.OptionalDecimal
	ImageID            *uuid.UUID
	IsActive           *bool
	Variations         []UpdateVariationInput
	DeleteVariationIDs []uuid.UUID
}

// ServiceListResult is one page of the catalog listing.
type ServiceListResult struct {
	Data            []models.Service
	Total           int64
	Page            int
	Limit           int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// CatalogService owns the organization-facing service catalog, including
// the pricing-mode invariant and variation reconciliation.
type CatalogService struct {
	repo  repository.ServiceRepository
	types repository.TypeRepository
}

func NewCatalogService(repo repository.ServiceRepository, types repository.TypeRepository) *CatalogService {
	return &CatalogService{repo: repo, types: types}
}

func (s *CatalogService) List(filter repository.ServiceFilter) (*ServiceListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	services, total, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &ServiceListResult{
		Data:            services,
		Total:           total,
		Page:            filter.Page,
		Limit:           filter.Limit,
		TotalPages:      totalPages,
		HasNextPage:     filter.Page < totalPages,
		HasPreviousPage: filter.Page > 1,
	}, nil
}

func (s *CatalogService) Get(id uuid.UUID) (*models.Service, error) {
	service, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Service with ID %s not found", id))
	}
	return service, nil
}

func (s *CatalogService) Create(input CreateServiceInput) (*models.Service, error) {
	serviceType, err := s.resolveActiveType(input.TypeID)
	if err != nil {
		return nil, err
	}

	// Exactly one pricing mode: a flat price or priced variations.
	if len(input.Variations) > 0 && input.Price != nil {
		return nil, utils.ValidationError(msgPriceWithVariations)
	}
	if len(input.Variations) == 0 && input.Price == nil {
		return nil, utils.ValidationError(msgNoPricingMode)
	}

	if input.Price != nil && input.Price.IsNegative() {
		return nil, utils.ValidationError("Service price must be zero or greater")
	}

	variations := make([]models.ServiceVariation, 0, len(input.Variations))
	for _, v := range input.Variations {
		if v.Price.IsNegative() {
			return nil, utils.ValidationError(
				fmt.Sprintf("Variation %q price must be zero or greater", v.Name))
		}
		variations = append(variations, models.ServiceVariation{
			Name:     v.Name,
			Price:    v.Price,
			IsActive: true,
		})
	}

	service := models.Service{
		OrganizationID: input.OrganizationID,
		BranchID:       input.BranchID,
		Name:           input.Name,
		Description:    input.Description,
		TypeID:         input.TypeID,
		Price:          repository.NullPrice(input.Price),
		ImageID:        input.ImageID,
		IsActive:       true,
		Variations:     variations,
	}
	if err := s.repo.Create(&service); err != nil {
		return nil, err
	}
	service.Type = serviceType

	log.Printf("Created service: %s (%s)", service.Name, service.ID)
	return &service, nil
}

func (s *CatalogService) Update(id uuid.UUID, input UpdateServiceInput) (*models.Service, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Service with ID %s not found", id))
	}

	if input.TypeID != nil {
		if _, err := s.resolveActiveType(*input.TypeID); err != nil {
			return nil, err
		}
	}

	update, err := buildUpdatePlan(input)
	if err != nil {
		return nil, err
	}

	if err := validatePricingAfterUpdate(existing, input); err != nil {
		return nil, err
	}

	if err := s.repo.ApplyUpdate(id, update); err != nil {
		return nil, err
	}

	service, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Service with ID %s not found", id))
	}

	log.Printf("Updated service: %s (%s)", service.Name, service.ID)
	return service, nil
}

func (s *CatalogService) Delete(id uuid.UUID) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.NotFoundError(fmt.Sprintf("Service with ID %s not found", id))
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	log.Printf("Deleted service: %s (%s)", existing.Name, id)
	return nil
}

func (s *CatalogService) resolveActiveType(typeID uuid.UUID) (*models.ServiceType, error) {
	serviceType, err := s.types.FindByID(typeID)
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Service type with ID %s not found", typeID))
	}
	if serviceType.Status != models.TypeStatusActive {
		return nil, utils.ValidationError("The selected service type is not active")
	}
	return serviceType, nil
}

// buildUpdatePlan turns the request into the three reconciliation steps plus
// the service-row patch.
func buildUpdatePlan(input UpdateServiceInput) (repository.ServiceUpdate, error) {
	update := repository.ServiceUpdate{
		DeleteVariationIDs: input.DeleteVariationIDs,
		Fields:             map[string]interface{}{},
	}

	for _, v := range input.Variations {
		if v.Price != nil && v.Price.IsNegative() {
			return update, utils.ValidationError("Variation price must be zero or greater")
		}

		if v.ID != nil {
			fields := map[string]interface{}{}
			if v.Name != nil {
				fields["name"] = *v.Name
			}
			if v.Price != nil {
				fields["price"] = *v.Price
			}
			if v.IsActive != nil {
				fields["is_active"] = *v.IsActive
			}
			update.VariationPatches = append(update.VariationPatches, repository.VariationPatch{
				ID:     *v.ID,
				Fields: fields,
			})
			continue
		}

		if v.Name == nil || v.Price == nil {
			return update, utils.ValidationError("New variations require both a name and a price")
		}
		update.NewVariations = append(update.NewVariations, models.ServiceVariation{
			Name:     *v.Name,
			Price:    *v.Price,
			IsActive: true,
		})
	}

	if input.BranchID != nil {
		update.Fields["branch_id"] = *input.BranchID
	}
	if input.Name != nil {
		update.Fields["name"] = *input.Name
	}
	if input.Description != nil {
		update.Fields["description"] = *input.Description
	}
	if input.TypeID != nil {
		update.Fields["type_id"] = *input.TypeID
	}
	if input.ImageID != nil {
		update.Fields["image_id"] = *input.ImageID
	}
	if input.IsActive != nil {
		update.Fields["is_active"] = *input.IsActive
	}
	if input.Price.Present {
		if input.Price.Value != nil && input.Price.Value.IsNegative() {
			return update, utils.ValidationError("Service price must be zero or greater")
		}
		if input.Price.Value != nil {
			update.Fields["price"] = *input.Price.Value
		} else {
			update.Fields["price"] = nil
		}
	}

	return update, nil
}

// validatePricingAfterUpdate re-checks the pricing-mode invariant against
// the state the service will be in once the whole plan is applied, so an
// update can never leave a service with both a flat price and variations,
// or with neither.
func validatePricingAfterUpdate(existing *models.Service, input UpdateServiceInput) error {
	priceSet := existing.Price.Valid
	if input.Price.Present {
		priceSet = input.Price.Value != nil
	}

	deleted := make(map[uuid.UUID]bool, len(input.DeleteVariationIDs))
	for _, id := range input.DeleteVariationIDs {
		deleted[id] = true
	}

	variationCount := 0
	for _, v := range existing.Variations {
		if !deleted[v.ID] {
			variationCount++
		}
	}
	for _, v := range input.Variations {
		if v.ID == nil {
			variationCount++
		}
	}

	if priceSet && variationCount > 0 {
		return utils.ValidationError(msgPriceWithVariations)
	}
	if !priceSet && variationCount == 0 {
		return utils.ValidationError(msgNoPricingMode)
	}
	return nil
}
