package service

import (
	"context"
	"errors"
	"strings"

	"askthem/internal/directory/history"
	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
	dErrors "askthem/pkg/domain-errors"
	"askthem/pkg/platform/sentinel"
	"askthem/pkg/requestcontext"
)

// Get returns one person.
func (s *Service) Get(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	if personID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "person id is required")
	}
	p, err := s.people.FindByID(ctx, personID)
	if err != nil {
		return nil, storeError(err, "person not found", "load person")
	}
	return p, nil
}

// SearchByName matches the fragment exactly or as a case-insensitive
// substring of a full, first or last name. A blank fragment matches nobody.
func (s *Service) SearchByName(ctx context.Context, fragment string) ([]*models.Person, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return []*models.Person{}, nil
	}
	people, err := s.people.SearchByName(ctx, fragment)
	if err != nil {
		return nil, storeError(err, "people not found", "search people")
	}
	return people, nil
}

// ListByTypes returns people of any of the given kinds.
func (s *Service) ListByTypes(ctx context.Context, tags []models.SubtypeTag) ([]*models.Person, error) {
	if len(tags) == 0 {
		return []*models.Person{}, nil
	}
	normalized := make([]models.SubtypeTag, len(tags))
	for i, t := range tags {
		normalized[i] = models.NormalizeSubtype(string(t))
	}
	people, err := s.people.Find(ctx, ports.PersonFilter{Types: normalized})
	if err != nil {
		return nil, storeError(err, "people not found", "list people by type")
	}
	return people, nil
}

// ListActive returns active people ordered by chamber, then last name.
func (s *Service) ListActive(ctx context.Context) ([]*models.Person, error) {
	people, err := s.people.Find(ctx, ports.PersonFilter{ActiveOnly: true})
	if err != nil {
		return nil, storeError(err, "people not found", "list active people")
	}
	return people, nil
}

// Featured returns the featured person.
func (s *Service) Featured(ctx context.Context) (*models.Person, error) {
	people, err := s.people.FindFeatured(ctx)
	if err != nil {
		return nil, storeError(err, "no featured person", "load featured person")
	}
	if len(people) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no featured person")
	}
	if len(people) > 1 {
		s.logger.WarnContext(ctx, "more than one featured person",
			"count", len(people),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return people[0], nil
}

// Detail returns the person's detail record, or an unsaved default when the
// person has none.
func (s *Service) Detail(ctx context.Context, personID id.PersonID) (*models.PersonDetail, error) {
	p, err := s.Get(ctx, personID)
	if err != nil {
		return nil, err
	}
	if s.details == nil {
		return models.DefaultDetail(p), nil
	}
	d, err := s.details.FindByPersonID(ctx, personID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return models.DefaultDetail(p), nil
	}
	if err != nil {
		return nil, storeError(err, "detail not found", "load person detail")
	}
	if d.VotesmartID == "" {
		d.VotesmartID = p.VotesmartID
	}
	return d, nil
}

// Verified reports whether any identity linked to the person is verified.
func (s *Service) Verified(ctx context.Context, personID id.PersonID) (bool, error) {
	if _, err := s.Get(ctx, personID); err != nil {
		return false, err
	}
	if s.identities == nil {
		return false, nil
	}
	n, err := s.identities.CountByPersonAndStatus(ctx, personID, models.IdentityVerified)
	if err != nil {
		return false, storeError(err, "identities not found", "count identities")
	}
	return n > 0, nil
}

// MostRecent returns the person's current or most recent value of attr.
func (s *Service) MostRecent(ctx context.Context, personID id.PersonID, attr string) (string, bool, error) {
	p, err := s.Get(ctx, personID)
	if err != nil {
		return "", false, err
	}
	v, ok := history.MostRecent(p, attr)
	return v, ok, nil
}

// CreatePerson stores a new person in jurisdiction. Attributes without a
// kind create a plain Person.
func (s *Service) CreatePerson(ctx context.Context, jurisdiction id.JurisdictionKey, attrs models.Attributes) (*models.Person, error) {
	key, err := id.ParseJurisdictionKey(string(jurisdiction))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid jurisdiction")
	}
	if strings.TrimSpace(attrs.FullName) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "full_name is required")
	}
	p := models.NewPerson(key, requestcontext.Now(ctx))
	p.Apply(attrs)
	if err := s.people.Save(ctx, p); err != nil {
		return nil, storeError(err, "person not found", "save person")
	}
	return p, nil
}

// SavePerson persists p. Saving a featured person demotes every other one
// under the same lock as the write.
func (s *Service) SavePerson(ctx context.Context, p *models.Person) error {
	if p == nil || p.ID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "person id is required")
	}
	p.UpdatedAt = requestcontext.Now(ctx)
	_, err := s.enforcer.Save(ctx, p, func(ctx context.Context, p *models.Person) error {
		if err := s.people.Save(ctx, p); err != nil {
			return storeError(err, "person not found", "save person")
		}
		return nil
	})
	return err
}

// MarkFeatured makes personID the only featured person.
func (s *Service) MarkFeatured(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	if _, err := s.enforcer.MarkFeatured(ctx, personID); err != nil {
		return nil, err
	}
	return s.Get(ctx, personID)
}
