// Package directory wires the officeholder directory from configuration.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"askthem/internal/directory/detail"
	"askthem/internal/directory/featured"
	"askthem/internal/directory/handler"
	"askthem/internal/directory/importer"
	"askthem/internal/directory/metrics"
	"askthem/internal/directory/ports"
	"askthem/internal/directory/service"
	"askthem/internal/directory/source/openstates"
	detailstore "askthem/internal/directory/store/detail"
	identitystore "askthem/internal/directory/store/identity"
	"askthem/internal/directory/store/person"
	"askthem/internal/directory/subtype"
	"askthem/internal/platform/config"
	"askthem/internal/platform/lock"
	platformmongo "askthem/internal/platform/mongo"
	"askthem/internal/platform/postgres"
	platformredis "askthem/internal/platform/redis"
)

// Service is the directory's orchestration surface.
type Service = service.Service

// Handler serves the directory over HTTP.
type Handler = handler.Handler

// Stores groups the persistence backends selected by configuration.
type Stores struct {
	People     ports.PersonStore
	Details    ports.DetailStore
	Identities ports.IdentityStore
	closers    []func(context.Context) error
}

// Close releases every backend connection.
func (s *Stores) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i](ctx))
	}
	return errors.Join(errs...)
}

// OpenStores connects the backend named by cfg.StoreDriver.
func OpenStores(ctx context.Context, cfg config.Server) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		return &Stores{
			People:     person.NewInMemory(),
			Details:    detailstore.NewInMemory(),
			Identities: identitystore.NewInMemory(),
		}, nil
	case config.StoreMongo:
		db, err := platformmongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := platformmongo.EnsureIndexes(ctx, db); err != nil {
			_ = db.Client().Disconnect(ctx)
			return nil, err
		}
		return &Stores{
			People:     person.NewMongo(db),
			Details:    detailstore.NewMongo(db),
			Identities: identitystore.NewMongo(db),
			closers:    []func(context.Context) error{db.Client().Disconnect},
		}, nil
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return &Stores{
			People:     person.NewPostgres(db),
			Details:    detailstore.NewPostgres(db),
			Identities: identitystore.NewPostgres(db),
			closers:    []func(context.Context) error{func(context.Context) error { return db.Close() }},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// NewLocker returns a Redis lock when REDIS_URL is set, otherwise an
// in-process one. The returned func closes the Redis connection.
func NewLocker(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (ports.Locker, func() error, error) {
	client, err := platformredis.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		logger.InfoContext(ctx, "using in-process locks")
		return lock.NewMemory(), func() error { return nil }, nil
	}
	return lock.NewRedis(client.Client, lock.WithTTL(cfg.LockTTL)), client.Close, nil
}

// App is a fully wired directory.
type App struct {
	Service *Service
	Handler *Handler
	Stores  *Stores
}

// Options collects the collaborators Build needs beyond configuration.
type Options struct {
	Stores  *Stores
	Locker  ports.Locker
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// Source overrides the OpenStates client, e.g. in tests.
	Source ports.OfficeholderSource
	// Geo overrides the OpenStates geo lookup. With Source set and Geo nil,
	// coordinate lookups match nobody.
	Geo ports.GeoLocator
}

// Build assembles the service graph over already opened stores.
func Build(cfg config.Server, opts Options) (*App, error) {
	if opts.Stores == nil {
		return nil, errors.New("stores are required")
	}
	if opts.Locker == nil {
		return nil, errors.New("locker is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	source, geo := opts.Source, opts.Geo
	if source == nil {
		client, err := openstates.New(cfg.OpenStates, openstates.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		source = client
		if geo == nil {
			geo = client
		}
	}

	retriever, err := detail.New(opts.Stores.Details, detail.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	pipeline, err := importer.NewPipeline(opts.Stores.People, opts.Locker,
		importer.WithSource(source),
		importer.WithDetailRetriever(retriever),
		importer.WithLogger(logger),
		importer.WithMetrics(opts.Metrics),
	)
	if err != nil {
		return nil, err
	}
	enforcer, err := featured.New(opts.Stores.People, opts.Locker,
		featured.WithLogger(logger),
		featured.WithMetrics(opts.Metrics),
	)
	if err != nil {
		return nil, err
	}
	svc, err := service.New(opts.Stores.People, subtype.NewDefaultRegistry(opts.Stores.People, geo), enforcer,
		service.WithDetailStore(opts.Stores.Details),
		service.WithIdentityStore(opts.Stores.Identities),
		service.WithImporter(pipeline),
		service.WithLogger(logger),
		service.WithMetrics(opts.Metrics),
	)
	if err != nil {
		return nil, err
	}
	return &App{
		Service: svc,
		Handler: handler.New(svc, cfg.AdminToken, logger),
		Stores:  opts.Stores,
	}, nil
}
