package model

import (
	"time"

	"github.com/google/uuid"
)

// RequirementModel mirrors the 'requirements' table.
type RequirementModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	PropertyType string    `gorm:"type:varchar(20);not null"`
	ListingType  string    `gorm:"type:varchar(20);not null"`
	BudgetMin    float64   `gorm:"not null"`
	BudgetMax    float64   `gorm:"not null"`
	Location     string    `gorm:"type:varchar(255);not null"`
	AreaMin      *float64
	AreaMax      *float64
	Message      string `gorm:"type:text"`
	Status       string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequirementModel) TableName() string {
	return "requirements"
}
