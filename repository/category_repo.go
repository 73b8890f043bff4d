package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"petcare-catalog/models"
)

type gormCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) FindAll() ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	err := r.db.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *gormCategoryRepository) FindAllWithTypes() ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	err := r.db.
		Preload("Types", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.TypeStatusActive).Order("name asc")
		}).
		Order("name asc").
		Find(&categories).Error
	return categories, err
}

func (r *gormCategoryRepository) FindByID(id uuid.UUID) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := r.db.
		Preload("Types", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.TypeStatusActive).Order("name asc")
		}).
		First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindBySlug(slug string) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := r.db.
		Preload("Types", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.TypeStatusActive).Order("name asc")
		}).
		First(&category, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *gormCategoryRepository) NameTaken(name string, excludeID *uuid.UUID) (bool, error) {
	return r.taken("name = ?", name, excludeID)
}

func (r *gormCategoryRepository) SlugTaken(slug string, excludeID *uuid.UUID) (bool, error) {
	return r.taken("slug = ?", slug, excludeID)
}

func (r *gormCategoryRepository) taken(condition string, value string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.ServiceCategory{}).Where(condition, value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormCategoryRepository) Create(category *models.ServiceCategory) error {
	return r.db.Create(category).Error
}

func (r *gormCategoryRepository) Update(category *models.ServiceCategory) error {
	return r.db.Save(category).Error
}

func (r *gormCategoryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ServiceCategory{}, "id = ?", id).Error
}

func (r *gormCategoryRepository) CountTypes(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ServiceType{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
