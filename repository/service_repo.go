package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"petcare-catalog/models"
)

type gormServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &gormServiceRepository{db: db}
}

func (r *gormServiceRepository) List(filter ServiceFilter) ([]models.Service, int64, error) {
	query := r.db.Model(&models.Service{})
	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.TypeID != nil {
		query = query.Where("type_id = ?", *filter.TypeID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var services []models.Service
	err := query.
		Preload("Type").
		Preload("Variations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Order("created_at desc").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&services).Error
	return services, total, err
}

func (r *gormServiceRepository) FindByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.
		Preload("Type").
		Preload("Variations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Create inserts the service row together with any variations; gorm writes
// the association rows in the same transaction.
func (r *gormServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *gormServiceRepository) ApplyUpdate(id uuid.UUID, update ServiceUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(update.DeleteVariationIDs) > 0 {
			// Scoped to this service so ids belonging to other services are
			// silently ignored.
			if err := tx.
				Where("id IN ? AND service_id = ?", update.DeleteVariationIDs, id).
				Delete(&models.ServiceVariation{}).Error; err != nil {
				return err
			}
		}

		for _, patch := range update.VariationPatches {
			if len(patch.Fields) == 0 {
				continue
			}
			if err := tx.Model(&models.ServiceVariation{}).
				Where("id = ? AND service_id = ?", patch.ID, id).
				Updates(patch.Fields).Error; err != nil {
				return err
			}
		}

		for i := range update.NewVariations {
			update.NewVariations[i].ServiceID = id
			if err := tx.Create(&update.NewVariations[i]).Error; err != nil {
				return err
			}
		}

		if len(update.Fields) > 0 {
			if err := tx.Model(&models.Service{}).
				Where("id = ?", id).
				Updates(update.Fields).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *gormServiceRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Explicit cascade keeps behavior identical on databases where the
		// FK constraint was not created.
		if err := tx.Where("service_id = ?", id).
			Delete(&models.ServiceVariation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, "id = ?", id).Error
	})
}
