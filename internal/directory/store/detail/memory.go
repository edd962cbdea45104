// Package detail persists PersonDetail records keyed by person id.
package detail

import (
	"context"
	"sync"

	"askthem/internal/directory/models"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

type InMemory struct {
	mu      sync.RWMutex
	details map[id.PersonID]models.PersonDetail
}

func NewInMemory() *InMemory {
	return &InMemory{details: make(map[id.PersonID]models.PersonDetail)}
}

func (s *InMemory) FindByPersonID(_ context.Context, personID id.PersonID) (*models.PersonDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.details[personID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	d.Links = append([]models.Link(nil), d.Links...)
	d.Persisted = true
	return &d, nil
}

func (s *InMemory) Save(_ context.Context, detail *models.PersonDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := *detail
	d.Links = append([]models.Link(nil), detail.Links...)
	s.details[detail.PersonID] = d
	detail.Persisted = true
	return nil
}
