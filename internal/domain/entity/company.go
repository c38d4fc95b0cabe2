// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a real-estate company that publishes land listings.
type Company struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Email         string     `json:"email"` // Unique across all companies.
	Contact       *int64     `json:"contact,omitempty"`
	Location      string     `json:"location,omitempty"`
	Website       string     `json:"website,omitempty"`
	LogoURL       string     `json:"logoUrl,omitempty"`
	Images        []string   `json:"images"`
	Established   *time.Time `json:"established,omitempty"`
	LicenseNumber string     `json:"licenseNumber,omitempty"`
	IsVerified    bool       `json:"isVerified"`
	Rating        float64    `json:"rating"`
	// TotalProperties is computed at read time from the company's land
	// listings; it is never stored.
	TotalProperties int64     `json:"totalProperties"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CompanySummary is the read-only projection of a Company attached to land
// listings (resolved at query time, never denormalized into the listing).
type CompanySummary struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact *int64 `json:"contact,omitempty"`
}

// Summary builds the projection served alongside land listings.
func (c *Company) Summary() *CompanySummary {
	if c == nil {
		return nil
	}

	return &CompanySummary{
		Name:    c.Name,
		Email:   c.Email,
		Contact: c.Contact,
	}
}
