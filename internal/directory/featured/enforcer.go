// Package featured keeps at most one person flagged as featured.
package featured

import (
	"context"
	"errors"
	"log/slog"

	"askthem/internal/directory/metrics"
	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
	dErrors "askthem/pkg/domain-errors"
	"askthem/pkg/platform/sentinel"
	"askthem/pkg/requestcontext"
)

// LockKey is the single lock every featured-flag write takes.
const LockKey = "featured"

// Store is the slice of the person store the enforcer writes.
type Store interface {
	SetFeatured(ctx context.Context, personID id.PersonID, featured bool) error
	DemoteFeaturedExcept(ctx context.Context, keep id.PersonID) (int, error)
}

type Enforcer struct {
	store   Store
	locker  ports.Locker
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Enforcer)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Enforcer) { e.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Enforcer) { e.metrics = m }
}

func New(store Store, locker ports.Locker, opts ...Option) (*Enforcer, error) {
	if store == nil {
		return nil, errors.New("person store is required")
	}
	if locker == nil {
		return nil, errors.New("locker is required")
	}
	e := &Enforcer{store: store, locker: locker, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// Enforce demotes every featured person other than keep.
func (e *Enforcer) Enforce(ctx context.Context, keep id.PersonID) (int, error) {
	var demoted int
	err := e.withLock(ctx, func() error {
		var err error
		demoted, err = e.demote(ctx, keep)
		return err
	})
	return demoted, err
}

// Save runs save under the featured lock and, when p is featured, demotes
// everyone else before the lock is released. A concurrent MarkFeatured or
// Save therefore observes either none or all of this write.
func (e *Enforcer) Save(ctx context.Context, p *models.Person, save func(context.Context, *models.Person) error) (int, error) {
	if p == nil || p.ID.IsNil() {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "person id is required")
	}
	var demoted int
	err := e.withLock(ctx, func() error {
		if err := save(ctx, p); err != nil {
			return err
		}
		if !p.Featured {
			return nil
		}
		var err error
		demoted, err = e.demote(ctx, p.ID)
		return err
	})
	return demoted, err
}

// MarkFeatured flags personID and demotes everyone else under one lock, so
// concurrent marks settle on exactly one featured person.
func (e *Enforcer) MarkFeatured(ctx context.Context, personID id.PersonID) (int, error) {
	if personID.IsNil() {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "person id is required")
	}
	var demoted int
	err := e.withLock(ctx, func() error {
		if err := e.store.SetFeatured(ctx, personID, true); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "person not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "set featured flag")
		}
		var err error
		demoted, err = e.demote(ctx, personID)
		return err
	})
	if err != nil {
		return 0, err
	}
	e.logger.InfoContext(ctx, "person featured",
		"event", "person_featured",
		"person_id", personID,
		"demoted", demoted,
		"request_id", requestcontext.RequestID(ctx),
	)
	return demoted, nil
}

func (e *Enforcer) demote(ctx context.Context, keep id.PersonID) (int, error) {
	n, err := e.store.DemoteFeaturedExcept(ctx, keep)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "demote featured people")
	}
	if e.metrics != nil {
		e.metrics.AddFeaturedDemotions(n)
	}
	return n, nil
}

func (e *Enforcer) withLock(ctx context.Context, fn func() error) error {
	release, err := e.locker.Acquire(ctx, LockKey)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "acquire featured lock")
	}
	defer func() {
		if relErr := release(context.WithoutCancel(ctx)); relErr != nil {
			e.logger.WarnContext(ctx, "release featured lock", "error", relErr)
		}
	}()
	return fn()
}
