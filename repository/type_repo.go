package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"petcare-catalog/models"
)

type gormTypeRepository struct {
	db *gorm.DB
}

func NewTypeRepository(db *gorm.DB) TypeRepository {
	return &gormTypeRepository{db: db}
}

func (r *gormTypeRepository) FindActive(categoryID *uuid.UUID) ([]models.ServiceType, error) {
	query := r.db.Where("status = ?", models.TypeStatusActive).Order("name asc")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var types []models.ServiceType
	err := query.Find(&types).Error
	return types, err
}

func (r *gormTypeRepository) FindAll(categoryID *uuid.UUID) ([]models.ServiceType, error) {
	query := r.db.Order("created_at desc")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var types []models.ServiceType
	err := query.Find(&types).Error
	return types, err
}

func (r *gormTypeRepository) FindPending() ([]models.ServiceType, error) {
	var types []models.ServiceType
	err := r.db.
		Where("status = ?", models.TypeStatusPending).
		Order("created_at desc").
		Find(&types).Error
	return types, err
}

func (r *gormTypeRepository) FindByID(id uuid.UUID) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.First(&serviceType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

func (r *gormTypeRepository) FindBySlug(slug string) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.First(&serviceType, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

func (r *gormTypeRepository) SlugTaken(slug string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.ServiceType{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormTypeRepository) NameTaken(name string, categoryID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.ServiceType{}).
		Where("name = ? AND category_id = ?", name, categoryID)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormTypeRepository) Create(serviceType *models.ServiceType) error {
	return r.db.Create(serviceType).Error
}

func (r *gormTypeRepository) Update(serviceType *models.ServiceType) error {
	return r.db.Save(serviceType).Error
}

func (r *gormTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ServiceType{}, "id = ?", id).Error
}

func (r *gormTypeRepository) CountServices(typeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).
		Where("type_id = ?", typeID).
		Count(&count).Error
	return count, err
}

func (r *gormTypeRepository) DeleteRejectedBefore(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("status = ? AND updated_at < ?", models.TypeStatusRejected, cutoff).
		Delete(&models.ServiceType{})
	return result.RowsAffected, result.Error
}
