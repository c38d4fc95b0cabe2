package entity

import (
	"time"

	"github.com/google/uuid"
)

// AreaUnit is the measurement unit of a listing's area.
type AreaUnit string

const (
	AreaUnitSqft     AreaUnit = "sqft"
	AreaUnitAcres    AreaUnit = "acres"
	AreaUnitHectares AreaUnit = "hectares"
)

// LandListingType is how a listing is offered to the market.
// Note: buyer requirements use a different value set (buy|rent|lease); the
// two vocabularies are kept separate on purpose, see DESIGN.md.
type LandListingType string

const (
	LandListingTypeSale  LandListingType = "sale"
	LandListingTypeRent  LandListingType = "rent"
	LandListingTypeLease LandListingType = "lease"
)

// LegalStatus describes the legal standing of a listing.
type LegalStatus string

const (
	LegalStatusClear           LegalStatus = "clear"
	LegalStatusDisputed        LegalStatus = "disputed"
	LegalStatusUnderLitigation LegalStatus = "under-litigation"
)

// Coordinates is an optional geographic point for a listing.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Land represents a property listing published by a company.
//
// CompanyID is a plain reference; its existence is not validated at write
// time. A listing whose company has been deleted stays retrievable, it just
// loses its Company projection.
type Land struct {
	ID               uuid.UUID        `json:"id"`
	CompanyID        uuid.UUID        `json:"companyId"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	PriceRange       string           `json:"priceRange,omitempty"` // Free text, not a structured range.
	Area             *float64         `json:"area,omitempty"`
	Unit             AreaUnit         `json:"unit"`
	Location         string           `json:"location"`
	Coordinates      *Coordinates     `json:"coordinates,omitempty"`
	Images           []string         `json:"images"`
	PropertyType     *PropertyType    `json:"propertyType,omitempty"`
	ListingType      *LandListingType `json:"listingType,omitempty"`
	Amenities        []string         `json:"amenities"`
	NearbyFacilities []string         `json:"nearbyFacilities"`
	LegalStatus      LegalStatus      `json:"legalStatus"`
	IsAvailable      bool             `json:"isAvailable"`
	Featured         bool             `json:"featured"`
	// Company is the owning company's summary, resolved per request.
	// Nil when the company no longer exists.
	Company   *CompanySummary `json:"company,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
