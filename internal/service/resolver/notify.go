package resolver

import (
	"context"

	"github.com/oshokin/lync-update-info/internal/logger"
)

// Notifier receives informational progress notices. Notices never fail a run.
type Notifier interface {
	Notify(ctx context.Context, message string, kvs ...any)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string, kvs ...any)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, message string, kvs ...any) {
	f(ctx, message, kvs...)
}

// LogNotifier writes notices to the context logger at info level.
type LogNotifier struct{}

// Notify logs message with kvs.
func (LogNotifier) Notify(ctx context.Context, message string, kvs ...any) {
	logger.InfoKV(ctx, message, kvs...)
}
