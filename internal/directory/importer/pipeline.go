package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"askthem/internal/directory/metrics"
	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
	dErrors "askthem/pkg/domain-errors"
	"askthem/pkg/requestcontext"
)

// Store is the slice of the person store the pipeline writes through.
type Store interface {
	Save(ctx context.Context, p *models.Person) error
	CountByJurisdiction(ctx context.Context, key id.JurisdictionKey) (int, error)
}

// Result reports one LoadForJurisdiction call.
type Result struct {
	Jurisdiction id.JurisdictionKey
	// People holds created persons in source order.
	People []*models.Person
	// AlreadyLoaded is true when the jurisdiction had people and nothing ran.
	AlreadyLoaded bool
}

// Pipeline imports a jurisdiction's officeholders exactly once.
type Pipeline struct {
	store       Store
	locker      ports.Locker
	source      ports.OfficeholderSource
	details     ports.DetailRetriever
	defaultType models.SubtypeTag
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSource sets the source used when LoadForJurisdiction is given none.
func WithSource(source ports.OfficeholderSource) Option {
	return func(p *Pipeline) { p.source = source }
}

// WithDetailRetriever runs r after each person is persisted.
func WithDetailRetriever(r ports.DetailRetriever) Option {
	return func(p *Pipeline) { p.details = r }
}

// WithDefaultType sets the kind given to records whose adapter assigns none.
func WithDefaultType(tag models.SubtypeTag) Option {
	return func(p *Pipeline) { p.defaultType = tag }
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// NewPipeline requires a store and a locker.
func NewPipeline(store Store, locker ports.Locker, opts ...Option) (*Pipeline, error) {
	if store == nil {
		return nil, errors.New("person store is required")
	}
	if locker == nil {
		return nil, errors.New("locker is required")
	}
	p := &Pipeline{
		store:       store,
		locker:      locker,
		defaultType: models.SubtypeStateLegislator,
		logger:      slog.Default(),
		tracer:      otel.Tracer("askthem/directory/importer"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p, nil
}

// LoadForJurisdiction imports every record source returns for key, unless
// the jurisdiction already has people. A nil source selects the configured
// default; a nil adapter selects IdentityAdapter. The first failure aborts the
// batch; records saved before it remain.
func (p *Pipeline) LoadForJurisdiction(ctx context.Context, key id.JurisdictionKey, source ports.OfficeholderSource, adapter Adapter) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "importer.LoadForJurisdiction",
		trace.WithAttributes(attribute.String("jurisdiction", string(key))))
	defer span.End()

	res, err := p.load(ctx, key, source, adapter)
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.observe("failed", 0)
		p.logger.ErrorContext(ctx, "jurisdiction import failed",
			"jurisdiction", key,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	case res.AlreadyLoaded:
		p.observe("already_loaded", 0)
		p.logger.InfoContext(ctx, "jurisdiction already loaded",
			"jurisdiction", key,
			"request_id", requestcontext.RequestID(ctx),
		)
	default:
		span.SetAttributes(attribute.Int("people", len(res.People)))
		p.observe("imported", len(res.People))
		p.logger.InfoContext(ctx, "jurisdiction imported",
			"event", "jurisdiction_imported",
			"jurisdiction", key,
			"people", len(res.People),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return res, err
}

func (p *Pipeline) load(ctx context.Context, key id.JurisdictionKey, source ports.OfficeholderSource, adapter Adapter) (res *Result, err error) {
	if key.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "jurisdiction is required")
	}
	if source == nil {
		source = p.source
	}
	if source == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "no officeholder source configured")
	}
	if adapter == nil {
		adapter = IdentityAdapter{}
	}

	release, err := p.locker.Acquire(ctx, "import:"+string(key))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "acquire import lock")
	}
	defer func() {
		if relErr := release(context.WithoutCancel(ctx)); relErr != nil {
			p.logger.WarnContext(ctx, "release import lock", "jurisdiction", key, "error", relErr)
		}
	}()

	count, err := p.store.CountByJurisdiction(ctx, key)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "count jurisdiction people")
	}
	if count > 0 {
		return &Result{Jurisdiction: key, AlreadyLoaded: true}, nil
	}

	records, err := source.FetchOfficeholders(ctx, key)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "fetch officeholders")
	}

	now := requestcontext.Now(ctx)
	res = &Result{Jurisdiction: key, People: make([]*models.Person, 0, len(records))}
	for i, raw := range records {
		person, err := p.loadRecord(ctx, key, raw, adapter, now)
		if err != nil {
			return res, fmt.Errorf("record %d: %w", i, err)
		}
		res.People = append(res.People, person)
	}
	return res, nil
}

func (p *Pipeline) loadRecord(ctx context.Context, key id.JurisdictionKey, raw models.RawAttributes, adapter Adapter, now time.Time) (*models.Person, error) {
	attrs, err := adapter.Adapt(raw)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			err = dErrors.Wrap(err, dErrors.CodeValidation, "adapt record")
		}
		return nil, err
	}

	person := models.NewPerson(key, now)
	person.Type = p.defaultType
	person.Apply(attrs)

	if err := p.store.Save(ctx, person); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "save person")
	}
	if p.details != nil {
		if err := p.details.Retrieve(ctx, person); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "retrieve person detail")
		}
	}
	return person, nil
}

func (p *Pipeline) observe(outcome string, imported int) {
	if p.metrics == nil {
		return
	}
	p.metrics.IncrementImport(outcome)
	p.metrics.AddPeopleImported(imported)
}
