package feed

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransport classifies failures to fetch the feed document.
	ErrTransport = errors.New("transport error")
	// ErrValidation classifies entries whose trigger shape is not the supported one.
	ErrValidation = errors.New("unexpected trigger structure")
	// ErrEmptyFeed is returned when the feed holds no entries.
	ErrEmptyFeed = errors.New("update metadata contains no entries")
	// ErrVersionNotFound classifies a requested version matching zero or several entries.
	ErrVersionNotFound = errors.New("version not found in update metadata")
	// ErrDecode classifies OS version values that cannot be decoded.
	ErrDecode = errors.New("unexpected value in version")
)

type (
	// TransportError reports a failed feed download.
	TransportError struct {
		URL string
		Err error
	}

	// ValidationError reports an entry whose triggers differ from the supported template.
	ValidationError struct {
		Title  string
		Reason string
		Value  string
	}

	// VersionNotFoundError reports a version selector that did not match exactly one entry.
	VersionNotFoundError struct {
		Version string
		Matches int
		Titles  []string
	}

	// DecodeError reports an encoded OS version that could not be decoded.
	DecodeError struct {
		Value string
		Err   error
	}
)

func (e *TransportError) Error() string {
	return fmt.Sprintf("can't download %s: %v", e.URL, e.Err)
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error { return e.Err }

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s in item %q", e.Reason, e.Title)
	}

	return fmt.Sprintf("%s in item %q: %s", e.Reason, e.Title, e.Value)
}

// Unwrap returns ErrValidation so callers can use errors.Is.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Error lists every available title so the caller can pick a valid version.
func (e *VersionNotFoundError) Error() string {
	quoted := make([]string, 0, len(e.Titles))
	for _, t := range e.Titles {
		quoted = append(quoted, "'"+t+"'")
	}

	reason := "could not find"
	if e.Matches > 1 {
		reason = fmt.Sprintf("found %d entries for", e.Matches)
	}

	return fmt.Sprintf("%s version %s in update metadata. Updates that are available: %s",
		reason, e.Version, strings.Join(quoted, ", "))
}

// Unwrap returns ErrVersionNotFound so callers can use errors.Is.
func (e *VersionNotFoundError) Unwrap() error { return ErrVersionNotFound }

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrDecode, e.Value)
	}

	return fmt.Sprintf("%s: %s: %v", ErrDecode, e.Value, e.Err)
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Unwrap returns the parse failure, if any.
func (e *DecodeError) Unwrap() error { return e.Err }
