// Package ports defines shared interfaces for the directory module.
// Interfaces are placed here when consumed by more than one package.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks PersonStore,DetailStore,IdentityStore,Locker,OfficeholderSource,DetailRetriever,GeoLocator,JurisdictionQueryable

import (
	"context"

	"askthem/internal/directory/models"
	id "askthem/pkg/domain"
)

// PersonFilter narrows a person scan. Zero-valued fields do not filter.
type PersonFilter struct {
	Types        []models.SubtypeTag
	Jurisdiction string
	Chamber      string
	// District matches the top-level district or any current role's district.
	District   string
	Slugs      []string
	ActiveOnly bool
}

// PersonStore persists officeholders. Find results are ordered by chamber,
// then last name, then id.
type PersonStore interface {
	// Save inserts or replaces a person by id.
	Save(ctx context.Context, p *models.Person) error

	// FindByID returns sentinel.ErrNotFound when absent.
	FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error)

	Find(ctx context.Context, filter PersonFilter) ([]*models.Person, error)

	// SearchByName matches exact or case-insensitive substring on full, first
	// or last name.
	SearchByName(ctx context.Context, fragment string) ([]*models.Person, error)

	CountByJurisdiction(ctx context.Context, key id.JurisdictionKey) (int, error)

	// DistinctSubtypes returns stored type values, blank normalized to Person,
	// sorted.
	DistinctSubtypes(ctx context.Context) ([]models.SubtypeTag, error)

	FindFeatured(ctx context.Context) ([]*models.Person, error)

	// SetFeatured flips a single person's flag; sentinel.ErrNotFound when absent.
	SetFeatured(ctx context.Context, personID id.PersonID, featured bool) error

	// DemoteFeaturedExcept clears the flag on every featured person other than
	// keep and returns how many were changed.
	DemoteFeaturedExcept(ctx context.Context, keep id.PersonID) (int, error)
}

// DetailStore persists PersonDetail records keyed by person.
type DetailStore interface {
	// FindByPersonID returns sentinel.ErrNotFound when absent.
	FindByPersonID(ctx context.Context, personID id.PersonID) (*models.PersonDetail, error)
	Save(ctx context.Context, detail *models.PersonDetail) error
}

// IdentityStore persists links between user accounts and persons.
type IdentityStore interface {
	Save(ctx context.Context, identity *models.Identity) error
	ListByPerson(ctx context.Context, personID id.PersonID) ([]*models.Identity, error)
	CountByPersonAndStatus(ctx context.Context, personID id.PersonID, status models.IdentityStatus) (int, error)
}

// Locker serializes check-then-act sequences across goroutines or processes.
type Locker interface {
	// Acquire blocks until key is held or ctx is done. The returned func
	// releases the key.
	Acquire(ctx context.Context, key string) (func(context.Context) error, error)
}

// OfficeholderSource fetches raw officeholder records for a jurisdiction.
type OfficeholderSource interface {
	FetchOfficeholders(ctx context.Context, key id.JurisdictionKey) ([]models.RawAttributes, error)
}

// DetailRetriever enriches a freshly imported person with its detail record.
type DetailRetriever interface {
	Retrieve(ctx context.Context, p *models.Person) error
}

// DistrictRef names one legislative district.
type DistrictRef struct {
	Jurisdiction string
	Chamber      string
	District     string
}

// GeoLocator maps coordinates to the districts containing them.
type GeoLocator interface {
	DistrictsAt(ctx context.Context, lat, lng float64) ([]DistrictRef, error)
}

// JurisdictionQueryable is implemented by every officeholder subtype.
type JurisdictionQueryable interface {
	QueryByLocation(ctx context.Context, loc models.Location) ([]*models.Person, error)
}
