// Package app wires configuration, the dataset and the command loop together.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/bft-labs/shiptraffic/internal/cliconfig"
	"github.com/bft-labs/shiptraffic/internal/repl"
	"github.com/bft-labs/shiptraffic/pkg/dataset"
	"github.com/bft-labs/shiptraffic/pkg/log"
)

// App is one analyzer process: it loads the dataset once and then serves the
// interactive session until the user quits.
type App struct {
	cfg    cliconfig.Config
	in     io.Reader
	out    io.Writer
	logger log.Logger
}

// New creates an App. cfg must already be validated.
func New(cfg cliconfig.Config, in io.Reader, out io.Writer, logger log.Logger) *App {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &App{cfg: cfg, in: in, out: out, logger: logger}
}

// Run loads the dataset and runs the command loop. A load failure is returned
// before any prompt is shown.
func (a *App) Run(ctx context.Context) error {
	ds, err := dataset.Load(a.cfg.DataFile)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	a.logger.Info("dataset loaded",
		log.String("path", a.cfg.DataFile),
		log.Int("records", ds.Len()))

	if a.cfg.Watch {
		w := dataset.NewWatcher(a.cfg.DataFile, a.logger)
		if err := w.Start(ctx); err != nil {
			a.logger.Warn("data file watcher disabled", log.Err(err))
		} else {
			defer w.Close()
		}
	}

	session := repl.NewSession(ds, a.in, a.out,
		repl.WithPrompt(a.cfg.Prompt),
		repl.WithRenderer(repl.NewRenderer(a.cfg.OutputFormat)),
		repl.WithLogger(a.logger),
	)
	if a.cfg.Banner {
		if err := session.Banner(); err != nil {
			return err
		}
	}

	if err := session.Run(ctx); err != nil {
		return err
	}
	a.logger.Debug("session stopped")
	return nil
}
