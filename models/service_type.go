package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TypeStatus string

const (
	TypeStatusActive   TypeStatus = "ACTIVE"
	TypeStatusPending  TypeStatus = "PENDING"
	TypeStatusRejected TypeStatus = "REJECTED"
)

type ServiceType struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string     `gorm:"not null;uniqueIndex:idx_category_type_name,priority:2" json:"name"`
	Slug       string     `gorm:"uniqueIndex;not null" json:"slug"`
	CategoryID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_category_type_name,priority:1" json:"categoryId"`
	Status     TypeStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`

	// Set only for types created through the suggestion flow.
	SuggestedByUserID *uuid.UUID `gorm:"type:uuid" json:"suggestedByUserId,omitempty"`

	Category *ServiceCategory `gorm:"foreignKey:CategoryID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID before creating
func (t *ServiceType) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
