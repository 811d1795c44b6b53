// Package output writes a resolution result for the calling automation.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/micromdm/plist"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/lync-update-info/internal/domain/feed"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatPlist Format = "plist"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

const indent = "  "

var (
	errUnknownFormat = errors.New("unknown output format")
	errNoResult      = errors.New("result is not set")
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatPlist), string(FormatYAML), string(FormatJSON)}
}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatPlist, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %s)", errUnknownFormat, s, strings.Join(Formats(), ", "))
	}
}

// Write encodes result to w.
func Write(w io.Writer, result *feed.Result, format Format) error {
	if result == nil {
		return errNoResult
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case FormatPlist:
		data, err = plist.MarshalIndent(result, indent)
	case FormatYAML:
		data, err = yaml.Marshal(result)
	case FormatJSON:
		data, err = marshalJSON(result)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}

	return nil
}

func marshalJSON(result *feed.Result) ([]byte, error) {
	value, err := structpb.NewStruct(result.ToMap())
	if err != nil {
		return nil, err
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
		Indent:    indent,
	}

	return marshalOptions.Marshal(value)
}
