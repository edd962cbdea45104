package models

// LocationKind discriminates the accepted location inputs.
type LocationKind string

const (
	LocationKindCoordinates  LocationKind = "coordinates"
	LocationKindDistrict     LocationKind = "district"
	LocationKindPostalCode   LocationKind = "postal_code"
	LocationKindJurisdiction LocationKind = "jurisdiction"
)

// Location is a normalized location input. Only the fields relevant to Kind
// are populated.
type Location struct {
	Kind         LocationKind
	Latitude     float64
	Longitude    float64
	Jurisdiction string // lower-case state/locality key
	Chamber      string // upper or lower
	District     string
	PostalCode   string // five digits
}
