package resolver

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/oshokin/lync-update-info/internal/config"
	"github.com/oshokin/lync-update-info/internal/logger"
	"github.com/oshokin/lync-update-info/internal/output"
	"github.com/oshokin/lync-update-info/internal/repository/metadata"
)

// Options are inputs accepted by the resolver entry point.
type Options struct {
	// ConfigPath is the optional path to a settings YAML file.
	ConfigPath string
	// Flags carries CLI overrides; only changed flags take effect.
	Flags *pflag.FlagSet
	// Format selects the output encoding; plist when empty.
	Format string
	// Output receives the encoded result; stdout when nil.
	Output io.Writer
	// Fetcher replaces the HTTP fetcher, mostly for tests.
	Fetcher metadata.Fetcher
}

// Run loads the configuration, resolves the update and writes the result.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "lync-update-info")

	format := output.FormatPlist
	if opts.Format != "" {
		var err error

		format, err = output.ParseFormat(opts.Format)
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(opts.ConfigPath, opts.Flags)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = metadata.NewHTTPFetcher(metadata.WithTimeout(cfg.Timeout))
	}

	ctx = logger.WithKV(ctx, "version", cfg.Version)
	logger.DebugKV(ctx, "Loaded settings", "feed", cfg.FeedURL(), "timeout", cfg.Timeout)

	result, err := New(cfg, fetcher).Resolve(ctx)
	if err != nil {
		return err
	}

	w := opts.Output
	if w == nil {
		w = os.Stdout
	}

	return output.Write(w, result, format)
}
