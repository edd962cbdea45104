// Package service orchestrates officeholder lookups, imports and the
// featured flag on top of the directory stores.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"askthem/internal/directory/importer"
	"askthem/internal/directory/location"
	"askthem/internal/directory/metrics"
	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
	dErrors "askthem/pkg/domain-errors"
	"askthem/pkg/platform/sentinel"
)

// Registry enumerates stored subtypes and their jurisdiction predicates.
type Registry interface {
	DistinctSubtypes(ctx context.Context) ([]models.SubtypeTag, error)
	Lookup(tag models.SubtypeTag) (ports.JurisdictionQueryable, error)
}

// LocationResolver classifies raw location input.
type LocationResolver interface {
	Resolve(raw string) (models.Location, bool)
}

// FeaturedEnforcer owns every write that can leave a person featured.
type FeaturedEnforcer interface {
	Save(ctx context.Context, p *models.Person, save func(context.Context, *models.Person) error) (int, error)
	MarkFeatured(ctx context.Context, personID id.PersonID) (int, error)
}

// Importer loads a jurisdiction's officeholders once.
type Importer interface {
	LoadForJurisdiction(ctx context.Context, key id.JurisdictionKey, source ports.OfficeholderSource, adapter importer.Adapter) (*importer.Result, error)
}

// Service is the directory's single entry point for handlers and the CLI.
type Service struct {
	people     ports.PersonStore
	details    ports.DetailStore
	identities ports.IdentityStore
	registry   Registry
	resolver   LocationResolver
	enforcer   FeaturedEnforcer
	importer   Importer
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

type Option func(*Service)

func WithDetailStore(store ports.DetailStore) Option {
	return func(s *Service) { s.details = store }
}

func WithIdentityStore(store ports.IdentityStore) Option {
	return func(s *Service) { s.identities = store }
}

// WithResolver replaces the default location resolver.
func WithResolver(r LocationResolver) Option {
	return func(s *Service) { s.resolver = r }
}

func WithImporter(i Importer) Option {
	return func(s *Service) { s.importer = i }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New requires the person store, the subtype registry and the featured
// enforcer.
func New(people ports.PersonStore, registry Registry, enforcer FeaturedEnforcer, opts ...Option) (*Service, error) {
	if people == nil {
		return nil, errors.New("person store is required")
	}
	if registry == nil {
		return nil, errors.New("subtype registry is required")
	}
	if enforcer == nil {
		return nil, errors.New("featured enforcer is required")
	}
	s := &Service{
		people:   people,
		registry: registry,
		enforcer: enforcer,
		resolver: location.New(),
		logger:   slog.Default(),
		tracer:   otel.Tracer("askthem/directory/service"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// storeError translates a store failure into a coded error.
func storeError(err error, notFound, op string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, notFound)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, op)
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, op)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, op)
}
