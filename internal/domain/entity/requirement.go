package entity

import (
	"time"

	"github.com/google/uuid"
)

// InquiryListingType is how a buyer wants to acquire a property.
// The value set deliberately differs from LandListingType (buy vs sale).
type InquiryListingType string

const (
	InquiryListingTypeBuy   InquiryListingType = "buy"
	InquiryListingTypeRent  InquiryListingType = "rent"
	InquiryListingTypeLease InquiryListingType = "lease"
)

// InquiryStatus is a purely administrative annotation on a requirement.
// No transition rules are enforced; any status may be set to any other.
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusMatched   InquiryStatus = "matched"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Valid reports whether the value is one of the known inquiry statuses.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusContacted, InquiryStatusMatched, InquiryStatusClosed:
		return true
	default:
		return false
	}
}

// Range is a numeric min/max pair used for budgets and area requirements.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Requirement is a buyer inquiry submitted through the public form.
// Requirements are append-only; only Status is ever mutated, by an admin.
type Requirement struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	PropertyType PropertyType       `json:"propertyType"`
	ListingType  InquiryListingType `json:"listingType"`
	Budget       Range              `json:"budget"`
	Location     string             `json:"location"`
	Area         *Range             `json:"area,omitempty"`
	Message      string             `json:"message,omitempty"`
	Status       InquiryStatus      `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}
