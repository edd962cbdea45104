// Package location normalizes free-form location input into a models.Location.
package location

import (
	"regexp"
	"strconv"
	"strings"

	"askthem/internal/directory/models"
	id "askthem/pkg/domain"
)

var (
	coordinatesPattern = regexp.MustCompile(`^(-?\d{1,3}(?:\.\d+)?)\s*,\s*(-?\d{1,3}(?:\.\d+)?)$`)
	postalCodePattern  = regexp.MustCompile(`^(\d{5})(?:-\d{4})?$`)
	districtPattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9 ._]*$`)
)

// Resolver turns raw input into a Location. It is stateless and safe for
// concurrent use.
type Resolver struct{}

// New returns a Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve accepts, after trimming and lower-casing:
//
//	"37.77,-122.41"          coordinates
//	"ca/lower/12", "ca-lower-12"  district
//	"94110", "94110-1234"    postal code
//	"ca"                     jurisdiction
//
// Anything else reports false. Resolve never errors.
func (r *Resolver) Resolve(raw string) (models.Location, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return models.Location{}, false
	}
	if loc, ok := parseCoordinates(s); ok {
		return loc, true
	}
	if loc, ok := parsePostalCode(s); ok {
		return loc, true
	}
	if loc, ok := parseDistrict(s); ok {
		return loc, true
	}
	if _, ok := jurisdictions[s]; ok {
		return models.Location{Kind: models.LocationKindJurisdiction, Jurisdiction: s}, true
	}
	return models.Location{}, false
}

func parseCoordinates(s string) (models.Location, bool) {
	m := coordinatesPattern.FindStringSubmatch(s)
	if m == nil {
		return models.Location{}, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.Location{}, false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil || lng < -180 || lng > 180 {
		return models.Location{}, false
	}
	return models.Location{Kind: models.LocationKindCoordinates, Latitude: lat, Longitude: lng}, true
}

func parsePostalCode(s string) (models.Location, bool) {
	m := postalCodePattern.FindStringSubmatch(s)
	if m == nil {
		return models.Location{}, false
	}
	return models.Location{
		Kind:         models.LocationKindPostalCode,
		PostalCode:   m[1],
		Jurisdiction: jurisdictionForPostalCode(m[1]),
	}, true
}

func parseDistrict(s string) (models.Location, bool) {
	var jurisdiction, chamber, district string
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return models.Location{}, false
		}
		jurisdiction, chamber, district = parts[0], parts[1], parts[2]
	} else {
		for _, c := range []string{"upper", "lower"} {
			if before, after, found := strings.Cut(s, "-"+c+"-"); found {
				jurisdiction, chamber, district = before, c, after
				break
			}
		}
	}
	if chamber != "upper" && chamber != "lower" {
		return models.Location{}, false
	}
	key, err := id.ParseJurisdictionKey(jurisdiction)
	if err != nil || !districtPattern.MatchString(district) {
		return models.Location{}, false
	}
	return models.Location{
		Kind:         models.LocationKindDistrict,
		Jurisdiction: string(key),
		Chamber:      chamber,
		District:     district,
	}, true
}
