// services/type_service.go
package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"petcare-catalog/models"
	"petcare-catalog/repository"
	"petcare-catalog/utils"
)

type CreateTypeInput struct {
	Name       string
	Slug       string
	CategoryID uuid.UUID
}

type UpdateTypeInput struct {
	Name       *string
	Slug       *string
	CategoryID *uuid.UUID
}

// SuggestionNotifier is told about new PENDING suggestions so the moderation
// side can alert whoever reviews them.
type SuggestionNotifier interface {
	NotifyTypeSuggested(serviceType *models.ServiceType)
}

// TypeService manages the type registry and its PENDING/ACTIVE/REJECTED
// approval workflow.
type TypeService struct {
	repo       repository.TypeRepository
	categories repository.CategoryRepository
	notifier   SuggestionNotifier
}

func NewTypeService(repo repository.TypeRepository, categories repository.CategoryRepository, notifier SuggestionNotifier) *TypeService {
	return &TypeService{repo: repo, categories: categories, notifier: notifier}
}

func (s *TypeService) ListActive(categoryID *uuid.UUID) ([]models.ServiceType, error) {
	return s.repo.FindActive(categoryID)
}

func (s *TypeService) ListAll(categoryID *uuid.UUID) ([]models.ServiceType, error) {
	return s.repo.FindAll(categoryID)
}

func (s *TypeService) ListPending() ([]models.ServiceType, error) {
	return s.repo.FindPending()
}

func (s *TypeService) Get(id uuid.UUID) (*models.ServiceType, error) {
	serviceType, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Service type with ID %s not found", id))
	}
	return serviceType, nil
}

func (s *TypeService) GetBySlug(slug string) (*models.ServiceType, error) {
	serviceType, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Service type with slug %q not found", slug))
	}
	return serviceType, nil
}

// Create is the admin path; the new type goes live immediately.
func (s *TypeService) Create(input CreateTypeInput) (*models.ServiceType, error) {
	serviceType, err := s.newType(input, models.TypeStatusActive, nil)
	if err != nil {
		return nil, err
	}

	log.Printf("Created service type: %s (%s)", serviceType.Name, serviceType.ID)
	return serviceType, nil
}

// Suggest is the user path; the new type waits in PENDING until an admin
// approves or rejects it. A missing slug is derived from the name.
func (s *TypeService) Suggest(input CreateTypeInput, userID uuid.UUID) (*models.ServiceType, error) {
	if input.Slug == "" {
		input.Slug = utils.Slugify(input.Name)
	}

	serviceType, err := s.newType(input, models.TypeStatusPending, &userID)
	if err != nil {
		return nil, err
	}

	log.Printf("Suggested service type: %s (%s) by user %s", serviceType.Name, serviceType.ID, userID)
	if s.notifier != nil {
		s.notifier.NotifyTypeSuggested(serviceType)
	}
	return serviceType, nil
}

func (s *TypeService) newType(input CreateTypeInput, status models.TypeStatus, suggestedBy *uuid.UUID) (*models.ServiceType, error) {
	if !utils.ValidateSlug(input.Slug) {
		return nil, utils.ValidationError(fmt.Sprintf("Invalid slug %q", input.Slug))
	}

	category, err := s.categories.FindByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Category with ID %s not found", input.CategoryID))
	}

	if err := s.checkUnique(input.Slug, input.Name, input.CategoryID, nil); err != nil {
		return nil, err
	}

	serviceType := models.ServiceType{
		Name:              input.Name,
		Slug:              input.Slug,
		CategoryID:        input.CategoryID,
		Status:            status,
		SuggestedByUserID: suggestedBy,
	}
	if err := s.repo.Create(&serviceType); err != nil {
		return nil, err
	}
	return &serviceType, nil
}

func (s *TypeService) Update(id uuid.UUID, input UpdateTypeInput) (*models.ServiceType, error) {
	serviceType, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Service type with ID %s not found", id))
	}

	categoryID := serviceType.CategoryID
	if input.CategoryID != nil {
		category, err := s.categories.FindByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, utils.NotFoundError(fmt.Sprintf("Category with ID %s not found", *input.CategoryID))
		}
		categoryID = *input.CategoryID
	}

	if input.Slug != nil {
		if !utils.ValidateSlug(*input.Slug) {
			return nil, utils.ValidationError(fmt.Sprintf("Invalid slug %q", *input.Slug))
		}
		taken, err := s.repo.SlugTaken(*input.Slug, &id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, utils.ConflictError(fmt.Sprintf("Slug %q is already in use", *input.Slug))
		}
		serviceType.Slug = *input.Slug
	}

	// Name uniqueness is per category, so a category move alone can also
	// collide.
	name := serviceType.Name
	if input.Name != nil {
		name = *input.Name
	}
	if input.Name != nil || input.CategoryID != nil {
		taken, err := s.repo.NameTaken(name, categoryID, &id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, utils.ConflictError(fmt.Sprintf("Service type %q already exists in this category", name))
		}
	}
	serviceType.Name = name
	serviceType.CategoryID = categoryID

	if err := s.repo.Update(serviceType); err != nil {
		return nil, err
	}

	log.Printf("Updated service type: %s (%s)", serviceType.Name, serviceType.ID)
	return serviceType, nil
}

// Approve transitions a PENDING type to ACTIVE.
func (s *TypeService) Approve(id uuid.UUID) (*models.ServiceType, error) {
	return s.transition(id, models.TypeStatusActive)
}

// Reject transitions a PENDING type to REJECTED.
func (s *TypeService) Reject(id uuid.UUID) (*models.ServiceType, error) {
	return s.transition(id, models.TypeStatusRejected)
}

func (s *TypeService) transition(id uuid.UUID, target models.TypeStatus) (*models.ServiceType, error) {
	serviceType, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Service type with ID %s not found", id))
	}

	if serviceType.Status != models.TypeStatusPending {
		return nil, utils.ConflictError("This service type is not pending review")
	}

	serviceType.Status = target
	if err := s.repo.Update(serviceType); err != nil {
		return nil, err
	}

	log.Printf("Service type %s (%s) transitioned to %s", serviceType.Name, id, target)
	return serviceType, nil
}

func (s *TypeService) Delete(id uuid.UUID) error {
	serviceType, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if serviceType == nil {
		return utils.NotFoundError(fmt.Sprintf("Service type with ID %s not found", id))
	}

	serviceCount, err := s.repo.CountServices(id)
	if err != nil {
		return err
	}
	if serviceCount > 0 {
		return utils.ConflictError(
			fmt.Sprintf("Cannot delete service type: %d services use it", serviceCount))
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	log.Printf("Deleted service type: %s (%s)", serviceType.Name, id)
	return nil
}

func (s *TypeService) checkUnique(slug, name string, categoryID uuid.UUID, excludeID *uuid.UUID) error {
	slugTaken, err := s.repo.SlugTaken(slug, excludeID)
	if err != nil {
		return err
	}
	if slugTaken {
		return utils.ConflictError(fmt.Sprintf("Slug %q is already in use", slug))
	}

	nameTaken, err := s.repo.NameTaken(name, categoryID, excludeID)
	if err != nil {
		return err
	}
	if nameTaken {
		return utils.ConflictError(fmt.Sprintf("Service type %q already exists in this category", name))
	}
	return nil
}
