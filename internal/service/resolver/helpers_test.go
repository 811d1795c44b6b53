package resolver

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/lync-update-info/internal/domain/feed"
)

// testUpdateName is the munki name used across resolver tests.
const testUpdateName = "Lync_Installer"

// fakeFetcher returns canned data and records the request it received.
type fakeFetcher struct {
	data []byte
	err  error

	mu     sync.Mutex
	url    string
	header http.Header
}

func (f *fakeFetcher) Download(_ context.Context, url string, header http.Header) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.url = url
	f.header = header.Clone()

	return f.data, f.err
}

// notice is one recorded Notifier call.
type notice struct {
	Message string
	KVs     []any
}

// recorder collects notices.
type recorder struct {
	mu      sync.Mutex
	notices []notice
}

func (r *recorder) notifier() Notifier {
	return NotifierFunc(func(_ context.Context, message string, kvs ...any) {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.notices = append(r.notices, notice{Message: message, KVs: kvs})
	})
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n.Message)
	}

	return out
}

func readFeed(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "..", "repository", "metadata", "testdata", "0409UCCP14.xml"))
	require.NoError(t, err)

	return data
}

// lyncEntry builds a well-formed Lync entry.
func lyncEntry(version string, date time.Time, versions ...string) feed.Entry {
	return feed.Entry{
		Title:            "Lync " + version + " Update",
		Date:             date,
		Location:         "https://download.example.com/lync_" + version + ".dmg",
		Payload:          "Lync " + version + " Update.pkg",
		ShortDescription: "Fixes for " + version,
		MinOS:            feed.HexStringEncoded("0x1068"),
		MaxOS:            feed.IntEncoded(0),
		TriggerCondition: []string{"and", "Lync"},
		Triggers: map[string]feed.Trigger{
			"Lync": {File: "Contents/Info.plist", Versions: versions},
		},
	}
}

func day(n int) time.Time {
	return time.Date(2014, time.January, n, 17, 0, 0, 0, time.UTC)
}
