// Package identity persists links between user accounts and persons.
package identity

import (
	"context"
	"sort"
	"sync"

	"askthem/internal/directory/models"
	id "askthem/pkg/domain"
)

type InMemory struct {
	mu         sync.RWMutex
	identities map[id.IdentityID]models.Identity
}

func NewInMemory() *InMemory {
	return &InMemory{identities: make(map[id.IdentityID]models.Identity)}
}

func (s *InMemory) Save(_ context.Context, identity *models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[identity.ID] = *identity
	return nil
}

// ListByPerson returns the person's identities oldest first.
func (s *InMemory) ListByPerson(_ context.Context, personID id.PersonID) ([]*models.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Identity, 0)
	for _, ident := range s.identities {
		if ident.PersonID == personID {
			c := ident
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *InMemory) CountByPersonAndStatus(_ context.Context, personID id.PersonID, status models.IdentityStatus) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, ident := range s.identities {
		if ident.PersonID == personID && ident.Status == status {
			n++
		}
	}
	return n, nil
}
