// Package subtype maps stored officeholder kinds to their jurisdiction
// predicates.
package subtype

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
)

// ErrUnimplementedJurisdictionQuery is returned by Lookup for a stored tag
// that has no registered predicate.
var ErrUnimplementedJurisdictionQuery = errors.New("subtype has no jurisdiction query")

// SubtypeLister reports the kinds present in storage.
type SubtypeLister interface {
	DistinctSubtypes(ctx context.Context) ([]models.SubtypeTag, error)
}

// Registry enumerates stored subtypes and resolves each to its predicate.
type Registry struct {
	lister SubtypeLister

	mu    sync.RWMutex
	impls map[models.SubtypeTag]ports.JurisdictionQueryable
}

// NewRegistry returns a registry with only the base Person kind registered.
func NewRegistry(lister SubtypeLister) *Registry {
	r := &Registry{
		lister: lister,
		impls:  make(map[models.SubtypeTag]ports.JurisdictionQueryable),
	}
	r.Register(models.SubtypePerson, Base{})
	return r
}

// NewDefaultRegistry registers every shipped subtype. geo may be nil, in
// which case coordinate lookups match nobody.
func NewDefaultRegistry(store ports.PersonStore, geo ports.GeoLocator) *Registry {
	r := NewRegistry(store)
	r.Register(models.SubtypeStateLegislator, NewStateLegislator(store, geo))
	r.Register(models.SubtypeGovernor, NewGovernor(store, geo))
	return r
}

// Register binds tag to q, replacing any earlier binding.
func (r *Registry) Register(tag models.SubtypeTag, q ports.JurisdictionQueryable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.impls[models.NormalizeSubtype(string(tag))] = q
}

// DistinctSubtypes returns the stored kinds, blank normalized to Person,
// deduplicated and sorted. An empty store yields an empty slice.
func (r *Registry) DistinctSubtypes(ctx context.Context) ([]models.SubtypeTag, error) {
	raw, err := r.lister.DistinctSubtypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subtypes: %w", err)
	}
	seen := make(map[models.SubtypeTag]struct{}, len(raw))
	tags := make([]models.SubtypeTag, 0, len(raw))
	for _, t := range raw {
		tag := models.NormalizeSubtype(string(t))
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

// Lookup returns the predicate registered for tag.
func (r *Registry) Lookup(tag models.SubtypeTag) (ports.JurisdictionQueryable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.impls[models.NormalizeSubtype(string(tag))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnimplementedJurisdictionQuery, tag)
	}
	return q, nil
}
