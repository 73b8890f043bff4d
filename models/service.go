package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service is a concrete offering created by an organization. Exactly one
// pricing mode holds at a time: either Price is set and there are no
// variations, or Price is null and at least one variation carries the price.
type Service struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;index;not null"`
	BranchID       *uuid.UUID `gorm:"type:uuid;index"`
	Name           string     `gorm:"not null"`
	Description    string
	TypeID         uuid.UUID           `gorm:"type:uuid;index;not null"`
	Price          decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	ImageID        *uuid.UUID          `gorm:"type:uuid"`
	IsActive       bool                `gorm:"default:true"`

	Type       *ServiceType       `gorm:"foreignKey:TypeID"`
	Variations []ServiceVariation `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ServiceVariation struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ServiceID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name      string          `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive  bool            `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Initialize UUID before creating
func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

func (v *ServiceVariation) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
