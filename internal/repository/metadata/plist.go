package metadata

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/micromdm/plist"

	"github.com/oshokin/lync-update-info/internal/domain/feed"
)

// binaryPlistHeader starts every binary property list.
const binaryPlistHeader = "bplist00"

var errEmptyDocument = errors.New("document is empty")

// Decode parses a property list whose root is an array of feed entries.
func Decode(data []byte) ([]feed.Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyDocument
	}

	var entries []feed.Entry

	if bytes.HasPrefix(data, []byte(binaryPlistHeader)) {
		if err := plist.NewBinaryDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
			return nil, fmt.Errorf("decode binary plist: %w", err)
		}

		return entries, nil
	}

	if err := plist.NewXMLDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode XML plist: %w", err)
	}

	return entries, nil
}
