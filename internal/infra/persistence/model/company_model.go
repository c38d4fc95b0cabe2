package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CompanyModel mirrors the 'companies' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type CompanyModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text;not null"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Contact       *int64
	Location      string `gorm:"type:varchar(255)"`
	Website       string `gorm:"type:varchar(255)"`
	LogoURL       string `gorm:"type:varchar(512)"`
	Images        datatypes.JSONSlice[string]
	Established   *time.Time
	LicenseNumber string `gorm:"type:varchar(100)"`
	IsVerified    bool   `gorm:"not null;default:false"`
	Rating        float64 `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
