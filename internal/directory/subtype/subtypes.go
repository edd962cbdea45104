package subtype

import (
	"context"
	"fmt"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
)

// Base is the plain Person kind. Plain persons cannot be relied on to carry
// location data, so it never matches.
type Base struct{}

func (Base) QueryByLocation(context.Context, models.Location) ([]*models.Person, error) {
	return []*models.Person{}, nil
}

// StateLegislator matches active legislators by district. Postal codes span
// several districts and match nobody.
type StateLegislator struct {
	store ports.PersonStore
	geo   ports.GeoLocator
}

func NewStateLegislator(store ports.PersonStore, geo ports.GeoLocator) *StateLegislator {
	return &StateLegislator{store: store, geo: geo}
}

func (s *StateLegislator) QueryByLocation(ctx context.Context, loc models.Location) ([]*models.Person, error) {
	base := ports.PersonFilter{
		Types:      []models.SubtypeTag{models.SubtypeStateLegislator},
		ActiveOnly: true,
	}
	switch loc.Kind {
	case models.LocationKindDistrict:
		f := base
		f.Jurisdiction, f.Chamber, f.District = loc.Jurisdiction, loc.Chamber, loc.District
		return s.store.Find(ctx, f)
	case models.LocationKindJurisdiction:
		f := base
		f.Jurisdiction = loc.Jurisdiction
		return s.store.Find(ctx, f)
	case models.LocationKindCoordinates:
		refs, err := districtsAt(ctx, s.geo, loc)
		if err != nil {
			return nil, err
		}
		out := []*models.Person{}
		for _, ref := range refs {
			f := base
			f.Jurisdiction, f.Chamber, f.District = ref.Jurisdiction, ref.Chamber, ref.District
			found, err := s.store.Find(ctx, f)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
		}
		return out, nil
	}
	return []*models.Person{}, nil
}

// Governor matches the active governor of whatever jurisdiction the location
// falls in.
type Governor struct {
	store ports.PersonStore
	geo   ports.GeoLocator
}

func NewGovernor(store ports.PersonStore, geo ports.GeoLocator) *Governor {
	return &Governor{store: store, geo: geo}
}

func (g *Governor) QueryByLocation(ctx context.Context, loc models.Location) ([]*models.Person, error) {
	var keys []string
	if loc.Kind == models.LocationKindCoordinates {
		refs, err := districtsAt(ctx, g.geo, loc)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]struct{})
		for _, ref := range refs {
			if _, ok := seen[ref.Jurisdiction]; ok || ref.Jurisdiction == "" {
				continue
			}
			seen[ref.Jurisdiction] = struct{}{}
			keys = append(keys, ref.Jurisdiction)
		}
	} else if loc.Jurisdiction != "" {
		keys = []string{loc.Jurisdiction}
	}

	out := []*models.Person{}
	for _, key := range keys {
		found, err := g.store.Find(ctx, ports.PersonFilter{
			Types:        []models.SubtypeTag{models.SubtypeGovernor},
			Jurisdiction: key,
			ActiveOnly:   true,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func districtsAt(ctx context.Context, geo ports.GeoLocator, loc models.Location) ([]ports.DistrictRef, error) {
	if geo == nil {
		return nil, nil
	}
	refs, err := geo.DistrictsAt(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, fmt.Errorf("locate districts: %w", err)
	}
	return refs, nil
}
