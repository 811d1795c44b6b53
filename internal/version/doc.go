// Package version exposes build metadata of lync-update-info.
//
// Version, Commit and BuildTime are injected with -ldflags "-X ...".
package version
