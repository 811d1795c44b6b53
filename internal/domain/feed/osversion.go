package feed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NoOSBound is the decoded value of an OS bound the feed leaves unset.
const NoOSBound = "0.0.0"

// hexPrefix marks string-encoded OS versions, e.g. "0x1058".
const hexPrefix = "0x"

var (
	errMissingValue     = errors.New("value is missing")
	errMissingHexPrefix = errors.New("string value lacks the 0x prefix")
	errNegativeValue    = errors.New("integer value is negative")
	errUnsupportedType  = errors.New("neither an integer nor a string")
)

type encoding uint8

const (
	encodingNone encoding = iota
	encodingInt
	encodingHexString
)

// EncodedVersion is an OS version as the feed stores it: either an integer
// whose hexadecimal rendering holds the digits (4184 == 0x1058 == 10.5.8) or a
// string carrying the same digits behind a "0x" prefix.
// The zero value means the key was absent.
type EncodedVersion struct {
	enc encoding
	n   int64
	s   string
}

// IntEncoded returns an integer-encoded version.
func IntEncoded(n int64) EncodedVersion {
	return EncodedVersion{enc: encodingInt, n: n}
}

// HexStringEncoded returns a string-encoded version such as "0x1058".
func HexStringEncoded(s string) EncodedVersion {
	return EncodedVersion{enc: encodingHexString, s: s}
}

// IsSet reports whether the version was present in the feed.
func (v EncodedVersion) IsSet() bool {
	return v.enc != encodingNone
}

// String returns the value as it appeared in the feed.
func (v EncodedVersion) String() string {
	switch v.enc {
	case encodingInt:
		return strconv.FormatInt(v.n, 10)
	case encodingHexString:
		return v.s
	default:
		return "<missing>"
	}
}

// UnmarshalPlist accepts <string> and <integer> values and rejects anything else.
func (v *EncodedVersion) UnmarshalPlist(f func(any) error) error {
	var s string
	if err := f(&s); err == nil {
		*v = HexStringEncoded(s)
		return nil
	}

	var n int64

	err := f(&n)
	if err == nil {
		*v = IntEncoded(n)
		return nil
	}

	return &DecodeError{Value: err.Error(), Err: errUnsupportedType}
}

// digits normalises both encodings to the bare hex digit sequence.
func (v EncodedVersion) digits() (string, error) {
	switch v.enc {
	case encodingInt:
		if v.n < 0 {
			return "", errNegativeValue
		}

		return strconv.FormatInt(v.n, 16), nil
	case encodingHexString:
		rest, ok := strings.CutPrefix(v.s, hexPrefix)
		if !ok {
			return "", errMissingHexPrefix
		}

		return rest, nil
	default:
		return "", errMissingValue
	}
}

// DecodeOSVersion converts an encoded OS version to "major.minor.patch".
//
// The first two digits are read as a decimal major version (one digit when the
// sequence is that short), the third and fourth as hexadecimal minor and patch
// digits. Further digits are ignored.
func DecodeOSVersion(v EncodedVersion) (string, error) {
	s, err := v.digits()
	if err != nil {
		return "", &DecodeError{Value: v.String(), Err: err}
	}

	var major, minor, patch int

	switch {
	case len(s) == 1:
		major, err = strconv.Atoi(s[:1])
	case len(s) > 1:
		major, err = strconv.Atoi(s[:2])
	}

	if err == nil && len(s) > 2 {
		minor, err = hexDigit(s[2])
	}

	if err == nil && len(s) > 3 {
		patch, err = hexDigit(s[3])
	}

	if err != nil {
		return "", &DecodeError{Value: v.String(), Err: err}
	}

	return fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
}

func hexDigit(b byte) (int, error) {
	n, err := strconv.ParseUint(string(b), 16, 8)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
