package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/unidict-shared/internal/catalog"
	"github.com/heartmarshall/unidict-shared/internal/config"
)

// Options are the command-line overrides of the apidoc command.
type Options struct {
	// Format overrides doc.format when non-empty.
	Format string
	// Out is the output file; empty means Stdout.
	Out string
	// ConfigPath overrides CONFIG_PATH when non-empty.
	ConfigPath string
	Stdout     io.Writer
}

// Run loads configuration, initializes the logger and renders the default
// endpoint catalog.
func Run(ctx context.Context, opts Options) error {
	load := config.Load
	if opts.ConfigPath != "" {
		load = func() (*config.Config, error) { return config.LoadFrom(opts.ConfigPath) }
	}
	cfg, err := load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	return Render(ctx, logger, cfg, opts)
}

// Render writes the default catalog described by cfg, applying opts.
func Render(ctx context.Context, logger *slog.Logger, cfg *config.Config, opts Options) (err error) {
	format := cfg.Doc.Format
	if opts.Format != "" {
		format = opts.Format
	}
	if format != config.FormatJSON && format != config.FormatYAML {
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, config.FormatJSON, config.FormatYAML)
	}

	reg, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	doc := catalog.NewDocument(cfg.Doc.Title, NewSystemInfo(cfg.Build), reg)

	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}

	if err := catalog.Render(w, doc, catalog.RenderOptions{Format: format, Compact: cfg.Doc.Compact}); err != nil {
		return err
	}

	logger.InfoContext(ctx, "catalog rendered",
		slog.String("version", BuildVersion()),
		slog.String("format", format),
		slog.Int("endpoints", len(doc.Endpoints)),
		slog.String("out", cmp.Or(opts.Out, "stdout")),
	)
	return nil
}
