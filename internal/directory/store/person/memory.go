// Package person persists officeholders. InMemory backs tests and the
// default server; Mongo and Postgres back deployments.
package person

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

// InMemory is a map-backed PersonStore. Callers never share memory with it:
// every read and write copies.
type InMemory struct {
	mu     sync.RWMutex
	people map[id.PersonID]*models.Person
}

func NewInMemory() *InMemory {
	return &InMemory{people: make(map[id.PersonID]*models.Person)}
}

func (s *InMemory) Save(_ context.Context, p *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people[p.ID] = p.Clone()
	return nil
}

func (s *InMemory) FindByID(_ context.Context, personID id.PersonID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.people[personID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return p.Clone(), nil
}

func (s *InMemory) Find(_ context.Context, filter ports.PersonFilter) ([]*models.Person, error) {
	return s.collect(func(p *models.Person) bool { return matches(p, filter) }), nil
}

func (s *InMemory) SearchByName(_ context.Context, fragment string) ([]*models.Person, error) {
	if fragment == "" {
		return []*models.Person{}, nil
	}
	needle := strings.ToLower(fragment)
	return s.collect(func(p *models.Person) bool {
		for _, name := range []string{p.FullName, p.FirstName, p.LastName} {
			if name == fragment || strings.Contains(strings.ToLower(name), needle) {
				return true
			}
		}
		return false
	}), nil
}

func (s *InMemory) CountByJurisdiction(_ context.Context, key id.JurisdictionKey) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.people {
		if p.Jurisdiction == string(key) {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) DistinctSubtypes(_ context.Context) ([]models.SubtypeTag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[models.SubtypeTag]struct{})
	tags := make([]models.SubtypeTag, 0)
	for _, p := range s.people {
		tag := models.NormalizeSubtype(string(p.Type))
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

func (s *InMemory) FindFeatured(_ context.Context) ([]*models.Person, error) {
	return s.collect(func(p *models.Person) bool { return p.Featured }), nil
}

func (s *InMemory) SetFeatured(_ context.Context, personID id.PersonID, featured bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.people[personID]
	if !ok {
		return sentinel.ErrNotFound
	}
	p.Featured = featured
	return nil
}

func (s *InMemory) DemoteFeaturedExcept(_ context.Context, keep id.PersonID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for pid, p := range s.people {
		if p.Featured && pid != keep {
			p.Featured = false
			n++
		}
	}
	return n, nil
}

func (s *InMemory) collect(keep func(*models.Person) bool) []*models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Person, 0)
	for _, p := range s.people {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	sortPeople(out)
	return out
}

func matches(p *models.Person, f ports.PersonFilter) bool {
	if f.ActiveOnly && !p.Active {
		return false
	}
	if f.Jurisdiction != "" && p.Jurisdiction != f.Jurisdiction {
		return false
	}
	if f.Chamber != "" && p.Chamber != f.Chamber && !roleHas(p, "chamber", f.Chamber) {
		return false
	}
	if f.District != "" && p.District != f.District && !roleHas(p, "district", f.District) {
		return false
	}
	if len(f.Types) > 0 && !containsTag(f.Types, models.NormalizeSubtype(string(p.Type))) {
		return false
	}
	if len(f.Slugs) > 0 && !slices.Contains(f.Slugs, p.Slug) {
		return false
	}
	return true
}

func roleHas(p *models.Person, key, value string) bool {
	for _, role := range p.Roles {
		if role[key] == value {
			return true
		}
	}
	return false
}

func containsTag(tags []models.SubtypeTag, tag models.SubtypeTag) bool {
	return slices.ContainsFunc(tags, func(t models.SubtypeTag) bool {
		return models.NormalizeSubtype(string(t)) == tag
	})
}

// sortPeople orders by chamber, last name, then id.
func sortPeople(people []*models.Person) {
	sort.SliceStable(people, func(i, j int) bool {
		a, b := people[i], people[j]
		if a.Chamber != b.Chamber {
			return a.Chamber < b.Chamber
		}
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.ID.String() < b.ID.String()
	})
}
