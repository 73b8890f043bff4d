// Package repository wraps all catalog persistence behind per-entity
// interfaces so the services layer never touches gorm directly.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"petcare-catalog/models"
)

type CategoryRepository interface {
	FindAll() ([]models.ServiceCategory, error)
	// FindAllWithTypes preloads each category's ACTIVE types, name ascending.
	FindAllWithTypes() ([]models.ServiceCategory, error)
	FindByID(id uuid.UUID) (*models.ServiceCategory, error)
	FindBySlug(slug string) (*models.ServiceCategory, error)
	// NameTaken/SlugTaken report whether another record (excluding excludeID
	// when non-nil) already uses the value.
	NameTaken(name string, excludeID *uuid.UUID) (bool, error)
	SlugTaken(slug string, excludeID *uuid.UUID) (bool, error)
	Create(category *models.ServiceCategory) error
	Update(category *models.ServiceCategory) error
	Delete(id uuid.UUID) error
	CountTypes(categoryID uuid.UUID) (int64, error)
}

type TypeRepository interface {
	// FindActive lists ACTIVE types, name ascending, optionally scoped to a category.
	FindActive(categoryID *uuid.UUID) ([]models.ServiceType, error)
	// FindAll lists every type, newest first, optionally scoped to a category.
	FindAll(categoryID *uuid.UUID) ([]models.ServiceType, error)
	FindPending() ([]models.ServiceType, error)
	FindByID(id uuid.UUID) (*models.ServiceType, error)
	FindBySlug(slug string) (*models.ServiceType, error)
	SlugTaken(slug string, excludeID *uuid.UUID) (bool, error)
	// NameTaken is scoped to a category; type names are only unique within one.
	NameTaken(name string, categoryID uuid.UUID, excludeID *uuid.UUID) (bool, error)
	Create(serviceType *models.ServiceType) error
	Update(serviceType *models.ServiceType) error
	Delete(id uuid.UUID) error
	CountServices(typeID uuid.UUID) (int64, error)
	// DeleteRejectedBefore removes REJECTED suggestions older than the cutoff
	// and reports how many were purged.
	DeleteRejectedBefore(cutoff time.Time) (int64, error)
}

// ServiceFilter narrows and pages a service listing. Page is 1-based;
// Limit is already clamped by the caller.
type ServiceFilter struct {
	OrganizationID *uuid.UUID
	BranchID       *uuid.UUID
	TypeID         *uuid.UUID
	IsActive       *bool
	Page           int
	Limit          int
}

// VariationPatch applies only the present fields to an existing variation.
type VariationPatch struct {
	ID     uuid.UUID
	Fields map[string]interface{}
}

// ServiceUpdate is the full reconciliation plan for one update call. The
// repository applies every step in a single transaction.
type ServiceUpdate struct {
	DeleteVariationIDs []uuid.UUID
	VariationPatches   []VariationPatch
	NewVariations      []models.ServiceVariation
	// Fields patches the service row itself; a nil "price" value clears the
	// stored price.
	Fields map[string]interface{}
}

type ServiceRepository interface {
	// List returns one page of matching services plus the unpaged total.
	List(filter ServiceFilter) ([]models.Service, int64, error)
	FindByID(id uuid.UUID) (*models.Service, error)
	// Create persists the service row and its variations atomically.
	Create(service *models.Service) error
	// ApplyUpdate runs the whole reconciliation plan in one transaction.
	ApplyUpdate(id uuid.UUID, update ServiceUpdate) error
	Delete(id uuid.UUID) error
}

// NullPrice builds the stored representation of an optional price.
func NullPrice(price *decimal.Decimal) decimal.NullDecimal {
	if price == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *price, Valid: true}
}
