package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"askthem/internal/directory/models"
)

func TestResolveAccepted(t *testing.T) {
	r := New()
	tests := []struct {
		name string
		raw  string
		want models.Location
	}{
		{
			name: "coordinates",
			raw:  " 37.7749, -122.4194 ",
			want: models.Location{Kind: models.LocationKindCoordinates, Latitude: 37.7749, Longitude: -122.4194},
		},
		{
			name: "integer coordinates",
			raw:  "40,-74",
			want: models.Location{Kind: models.LocationKindCoordinates, Latitude: 40, Longitude: -74},
		},
		{
			name: "slash district key",
			raw:  "CA/Lower/12",
			want: models.Location{Kind: models.LocationKindDistrict, Jurisdiction: "ca", Chamber: "lower", District: "12"},
		},
		{
			name: "dash district key",
			raw:  "ny-upper-7",
			want: models.Location{Kind: models.LocationKindDistrict, Jurisdiction: "ny", Chamber: "upper", District: "7"},
		},
		{
			name: "dash district key with hyphenated jurisdiction",
			raw:  "ny-nyc-lower-3",
			want: models.Location{Kind: models.LocationKindDistrict, Jurisdiction: "ny-nyc", Chamber: "lower", District: "3"},
		},
		{
			name: "postal code",
			raw:  "94110",
			want: models.Location{Kind: models.LocationKindPostalCode, PostalCode: "94110", Jurisdiction: "ca"},
		},
		{
			name: "zip plus four",
			raw:  "10001-1234",
			want: models.Location{Kind: models.LocationKindPostalCode, PostalCode: "10001", Jurisdiction: "ny"},
		},
		{
			name: "military postal code has no jurisdiction",
			raw:  "09001",
			want: models.Location{Kind: models.LocationKindPostalCode, PostalCode: "09001"},
		},
		{
			name: "jurisdiction abbreviation",
			raw:  "VT",
			want: models.Location{Kind: models.LocationKindJurisdiction, Jurisdiction: "vt"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRejected(t *testing.T) {
	r := New()
	for _, raw := range []string{
		"",
		"   ",
		"zz",
		"california",
		"1234",
		"123456",
		"91.0,10.0",
		"10.0,181.0",
		"ca/middle/12",
		"ca/lower/",
		"ca/lower/12/extra",
		"/lower/12",
		"ca-lower",
		"somewhere over the rainbow",
	} {
		t.Run(raw, func(t *testing.T) {
			got, ok := r.Resolve(raw)
			assert.False(t, ok)
			assert.Equal(t, models.Location{}, got)
		})
	}
}

func TestJurisdictionForPostalCode(t *testing.T) {
	assert.Equal(t, "tx", jurisdictionForPostalCode("73301"))
	assert.Equal(t, "ok", jurisdictionForPostalCode("73102"))
	assert.Equal(t, "ak", jurisdictionForPostalCode("99501"))
	assert.Equal(t, "pr", jurisdictionForPostalCode("00901"))
	assert.Equal(t, "", jurisdictionForPostalCode("96201"))
	assert.True(t, IsJurisdiction("dc"))
	assert.False(t, IsJurisdiction("xx"))
}
