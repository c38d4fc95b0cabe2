package entity

// PropertyType classifies a property. The same four values are shared by land
// listings and buyer requirements.
type PropertyType string

const (
	PropertyTypeResidential  PropertyType = "residential"
	PropertyTypeCommercial   PropertyType = "commercial"
	PropertyTypeAgricultural PropertyType = "agricultural"
	PropertyTypeIndustrial   PropertyType = "industrial"
)

// Valid reports whether the value is one of the known property types.
func (p PropertyType) Valid() bool {
	switch p {
	case PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeAgricultural, PropertyTypeIndustrial:
		return true
	default:
		return false
	}
}
