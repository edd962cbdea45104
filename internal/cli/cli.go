// Package cli implements directoryctl, the operator command line for the
// officeholder directory.
//
// Commands open the stores named by configuration, so they act on the same
// data as the API server when pointed at MongoDB or PostgreSQL.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"askthem/internal/directory"
	"askthem/internal/directory/ports"
	"askthem/internal/platform/config"
)

// CLI holds global flags and the lazily opened directory.
type CLI struct {
	out    io.Writer
	errOut io.Writer

	verbose    bool
	store      string
	configPath string

	logger *slog.Logger
	source ports.OfficeholderSource

	app     *directory.App
	closers []func(context.Context) error
}

// New creates a CLI writing results to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut}
}

// Execute runs directoryctl with the process arguments.
func Execute(ctx context.Context, out, errOut io.Writer) error {
	c := New(out, errOut)
	defer c.Close(context.WithoutCancel(ctx))
	return c.RootCommand().ExecuteContext(ctx)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "directoryctl",
		Short:         "Operate the officeholder directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if c.verbose {
				level = charmlog.DebugLevel
			}
			c.logger = slogFor(newLogger(c.errOut, level))
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.store, "store", "", "store driver: memory, mongo or postgres")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file")

	root.AddCommand(c.importCmd())
	root.AddCommand(c.featureCmd())
	root.AddCommand(c.lookupCmd())
	root.AddCommand(c.mostRecentCmd())
	return root
}

// Close releases stores and locks opened by commands.
func (c *CLI) Close(ctx context.Context) error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	c.app = nil
	return firstErr
}

// directory opens the configured directory once per CLI.
func (c *CLI) directory(ctx context.Context) (*directory.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	cfg, err := config.LoadPath(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.store != "" {
		cfg.StoreDriver = c.store
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	logger := c.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	stores, err := directory.OpenStores(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	c.closers = append(c.closers, stores.Close)

	locker, closeLocker, err := directory.NewLocker(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, func(context.Context) error { return closeLocker() })

	app, err := directory.Build(cfg, directory.Options{
		Stores: stores,
		Locker: locker,
		Logger: logger,
		Source: c.source,
	})
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "directory opened", "store", cfg.StoreDriver)
	c.app = app
	return app, nil
}
