package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	dErrors "askthem/pkg/domain-errors"
	"askthem/pkg/requestcontext"
)

// OfficeholdersForLocation returns everyone holding office for raw. Input
// that is not a location yields an empty result. Results are grouped by
// subtype in registry order, each group in the order its predicate returned;
// nothing is re-sorted or deduplicated.
func (s *Service) OfficeholdersForLocation(ctx context.Context, raw string) ([]*models.Person, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "service.OfficeholdersForLocation")
	defer span.End()

	people, outcome, err := s.officeholdersForLocation(ctx, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "location lookup failed",
			"location", raw,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	span.SetAttributes(attribute.String("outcome", outcome), attribute.Int("people", len(people)))
	if s.metrics != nil {
		s.metrics.ObserveLookup(outcome, start)
	}
	return people, err
}

func (s *Service) officeholdersForLocation(ctx context.Context, raw string) ([]*models.Person, string, error) {
	loc, ok := s.resolver.Resolve(raw)
	if !ok {
		return []*models.Person{}, "no_match", nil
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("location.kind", string(loc.Kind)))

	tags, err := s.registry.DistinctSubtypes(ctx)
	if err != nil {
		return nil, "error", storeError(err, "subtypes not found", "list subtypes")
	}

	// Resolve every predicate before querying so an unregistered kind fails
	// without running any query.
	queries := make([]ports.JurisdictionQueryable, len(tags))
	for i, tag := range tags {
		q, err := s.registry.Lookup(tag)
		if err != nil {
			return nil, "error", dErrors.Wrap(err, dErrors.CodeInternal, "resolve subtype query")
		}
		queries[i] = q
	}

	slots := make([][]*models.Person, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			found, err := q.QueryByLocation(gctx, loc)
			if err != nil {
				return storeError(err, "officeholders not found", "query "+string(tags[i]))
			}
			slots[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, "error", err
	}

	people := make([]*models.Person, 0)
	for _, found := range slots {
		people = append(people, found...)
	}
	if len(people) == 0 {
		return people, "no_match", nil
	}
	return people, "matched", nil
}
