package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LandModel mirrors the 'lands' table.
// CompanyID is indexed for the per-company listing filter but carries no
// foreign key constraint: a listing outlives its company on purpose.
type LandModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text;not null"`
	PriceRange       string    `gorm:"type:varchar(255)"`
	Area             *float64
	Unit             string `gorm:"type:varchar(20);not null;default:'sqft'"`
	Location         string `gorm:"type:varchar(255);not null"`
	Latitude         *float64
	Longitude        *float64
	Images           datatypes.JSONSlice[string]
	PropertyType     *string `gorm:"type:varchar(20)"`
	ListingType      *string `gorm:"type:varchar(20)"`
	Amenities        datatypes.JSONSlice[string]
	NearbyFacilities datatypes.JSONSlice[string]
	LegalStatus      string `gorm:"type:varchar(20);not null;default:'clear'"`
	// No gorm default on purpose: an explicit false must reach the database.
	// The availability default is applied by the service layer.
	IsAvailable      bool   `gorm:"not null"`
	Featured         bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (LandModel) TableName() string {
	return "lands"
}
