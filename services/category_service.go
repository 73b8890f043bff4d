// services/category_service.go
package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"petcare-catalog/models"
	"petcare-catalog/repository"
	"petcare-catalog/utils"
)

type CreateCategoryInput struct {
	Name string
	Slug string
}

type UpdateCategoryInput struct {
	Name *string
	Slug *string
}

// CategoryService manages the admin-curated category directory.
type CategoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List() ([]models.ServiceCategory, error) {
	return s.repo.FindAll()
}

func (s *CategoryService) ListWithTypes() ([]models.ServiceCategory, error) {
	return s.repo.FindAllWithTypes()
}

func (s *CategoryService) Get(id uuid.UUID) (*models.ServiceCategory, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Category with ID %s not found", id))
	}
	return category, nil
}

func (s *CategoryService) GetBySlug(slug string) (*models.ServiceCategory, error) {
	category, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Category with slug %q not found", slug))
	}
	return category, nil
}

func (s *CategoryService) Create(input CreateCategoryInput) (*models.ServiceCategory, error) {
	if !utils.ValidateSlug(input.Slug) {
		return nil, utils.ValidationError(fmt.Sprintf("Invalid slug %q", input.Slug))
	}

	// Best-effort pre-checks; the unique indexes are the final arbiter under
	// concurrent creates.
	if err := s.checkUnique(input.Name, input.Slug, nil); err != nil {
		return nil, err
	}

	category := models.ServiceCategory{
		Name: input.Name,
		Slug: input.Slug,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}

	log.Printf("Created category: %s (%s)", category.Name, category.ID)
	return &category, nil
}

func (s *CategoryService) Update(id uuid.UUID, input UpdateCategoryInput) (*models.ServiceCategory, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("Category with ID %s not found", id))
	}

	if input.Name != nil {
		taken, err := s.repo.NameTaken(*input.Name, &id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, utils.ConflictError(fmt.Sprintf("Category %q already exists", *input.Name))
		}
		category.Name = *input.Name
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
		category.Slug = *input.Slug
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}

	log.Printf("Updated category: %s (%s)", category.Name, category.ID)
	return category, nil
}

func (s *CategoryService) Delete(id uuid.UUID) error {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return utils.NotFoundError(fmt.Sprintf("Category with ID %s not found", id))
	}

	typeCount, err := s.repo.CountTypes(id)
	if err != nil {
		return err
	}
	if typeCount > 0 {
		return utils.ConflictError(
			fmt.Sprintf("Cannot delete category: %d types belong to it", typeCount))
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	log.Printf("Deleted category: %s (%s)", category.Name, id)
	return nil
}

func (s *CategoryService) checkUnique(name, slug string, excludeID *uuid.UUID) error {
	nameTaken, err := s.repo.NameTaken(name, excludeID)
	if err != nil {
		return err
	}
	if nameTaken {
		return utils.ConflictError(fmt.Sprintf("Category %q already exists", name))
	}

	slugTaken, err := s.repo.SlugTaken(slug, excludeID)
	if err != nil {
		return err
	}
	if slugTaken {
		return utils.ConflictError(fmt.Sprintf("Slug %q is already in use", slug))
	}
	return nil
}
