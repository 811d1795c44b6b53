package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/oshokin/lync-update-info/internal/config"
	"github.com/oshokin/lync-update-info/internal/domain/feed"
	"github.com/oshokin/lync-update-info/internal/logger"
	"github.com/oshokin/lync-update-info/internal/repository/metadata"
)

// descriptionTemplate wraps the feed's short description for munki.
const descriptionTemplate = "<html>%s</html>"

// Resolver turns the configured feed and version selector into a Result.
type Resolver struct {
	cfg      config.Config
	product  Product
	fetcher  metadata.Fetcher
	notifier Notifier
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNotifier replaces the default LogNotifier.
func WithNotifier(n Notifier) Option {
	return func(r *Resolver) {
		if n != nil {
			r.notifier = n
		}
	}
}

// WithProduct replaces the default Lync product layout.
func WithProduct(p Product) Option {
	return func(r *Resolver) {
		r.product = p
	}
}

// New returns a Resolver that downloads the feed through fetcher.
func New(cfg config.Config, fetcher metadata.Fetcher, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:      cfg,
		product:  Lync(),
		fetcher:  fetcher,
		notifier: LogNotifier{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve downloads and decodes the feed, selects the configured entry and
// assembles its Result. Any failure aborts the whole resolution.
func (r *Resolver) Resolve(ctx context.Context) (*feed.Result, error) {
	feedURL := r.cfg.FeedURL()

	header := http.Header{}
	header.Set("User-Agent", r.cfg.UserAgent)

	logger.DebugKV(ctx, "Downloading update metadata", "url", feedURL)

	data, err := r.fetcher.Download(ctx, feedURL, header)
	if err != nil {
		if !errors.Is(err, feed.ErrTransport) {
			err = &feed.TransportError{URL: feedURL, Err: err}
		}

		return nil, err
	}

	entries, err := metadata.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode update metadata from %s: %w", feedURL, err)
	}

	logger.DebugKV(ctx, "Decoded update metadata", "entries", len(entries))

	entry, err := Select(entries, r.cfg.Version)
	if err != nil {
		return nil, err
	}

	return r.Assemble(ctx, entry)
}

// Assemble derives the Result for a selected entry.
func (r *Resolver) Assemble(ctx context.Context, entry feed.Entry) (*feed.Result, error) {
	r.notifier.Notify(ctx, "Found URL", "url", entry.Location)
	r.notifier.Notify(ctx, "Got update", "title", entry.Title)

	info := &feed.PackageInfo{
		Description: fmt.Sprintf(descriptionTemplate, entry.ShortDescription),
		DisplayName: entry.Title,
	}

	maxOS, err := feed.DecodeOSVersion(entry.MaxOS)
	if err != nil {
		return nil, fmt.Errorf("max OS of %q: %w", entry.Title, err)
	}

	minOS, err := feed.DecodeOSVersion(entry.MinOS)
	if err != nil {
		return nil, fmt.Errorf("min OS of %q: %w", entry.Title, err)
	}

	if maxOS != feed.NoOSBound {
		info.MaximumOSVersion = maxOS
	}

	if minOS != feed.NoOSBound {
		info.MinimumOSVersion = minOS
	}

	installs, err := Installs(entry, r.product)
	if err != nil {
		return nil, err
	}

	info.Installs = installs

	requires, err := Requires(entry, r.product, r.cfg.UpdateName)
	if err != nil {
		return nil, err
	}

	if len(requires) > 0 {
		info.Requires = requires
		r.notifier.Notify(ctx, "Update requires previous update version",
			"version", strings.TrimPrefix(requires[0], r.cfg.UpdateName+"-"))
	}

	info.Name = r.cfg.UpdateName

	r.notifier.Notify(ctx, "Additional pkginfo", "pkginfo", info.ToMap())

	return &feed.Result{
		URL:               entry.Location,
		PkgName:           entry.Payload,
		DisplayName:       info.DisplayName,
		AdditionalPkgInfo: info,
	}, nil
}
