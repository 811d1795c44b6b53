package feed

import (
	"errors"
	"testing"

	"github.com/micromdm/plist"
	"github.com/stretchr/testify/require"
)

// TestDecodeOSVersion covers both encodings and every digit-position rule.
func TestDecodeOSVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value EncodedVersion
		want  string
	}{
		{"hex string", HexStringEncoded("0x1058"), "10.5.8"},
		{"integer", IntEncoded(4184), "10.5.8"},
		{"zero string", HexStringEncoded("0x0000"), NoOSBound},
		{"zero integer", IntEncoded(0), NoOSBound},
		{"one digit", HexStringEncoded("0x9"), "9.0.0"},
		{"two digits", HexStringEncoded("0x10"), "10.0.0"},
		{"three digits", HexStringEncoded("0x107"), "10.7.0"},
		{"hex minor and patch", HexStringEncoded("0x10ab"), "10.10.11"},
		{"uppercase hex", HexStringEncoded("0x10AB"), "10.10.11"},
		{"extra digits ignored", HexStringEncoded("0x109f1"), "10.9.15"},
		{"empty digits", HexStringEncoded("0x"), NoOSBound},
		{"integer with hex minor", IntEncoded(0x10a3), "10.10.3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeOSVersion(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestDecodeOSVersion_Errors asserts that every malformed value yields a DecodeError.
func TestDecodeOSVersion_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]EncodedVersion{
		"missing prefix":      HexStringEncoded("1058"),
		"hex in major":        HexStringEncoded("0xa058"),
		"hex in single major": HexStringEncoded("0xb"),
		"bad minor":           HexStringEncoded("0x10g8"),
		"bad patch":           HexStringEncoded("0x105z"),
		"negative integer":    IntEncoded(-1),
		"absent":              {},
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeOSVersion(value)
			require.ErrorIs(t, err, ErrDecode)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			require.Equal(t, value.String(), decodeErr.Value)
		})
	}
}

// TestDecodeOSVersion_Deterministic checks that all 1-4 digit decimal-major sequences decode consistently.
func TestDecodeOSVersion_Deterministic(t *testing.T) {
	t.Parallel()

	const hexDigits = "0123456789abcdef"

	for major := 10; major <= 99; major++ {
		for _, minor := range hexDigits {
			digits := "0x" + string(rune('0'+major/10)) + string(rune('0'+major%10)) + string(minor) + "f"

			first, err := DecodeOSVersion(HexStringEncoded(digits))
			require.NoError(t, err)

			second, err := DecodeOSVersion(HexStringEncoded(digits))
			require.NoError(t, err)
			require.Equal(t, first, second)
		}
	}

	got, err := DecodeOSVersion(HexStringEncoded("0x99f0"))
	require.NoError(t, err)
	require.Equal(t, "99.15.0", got)
}

// osBoundDocument wraps a single plist value under the "Min OS" key.
func osBoundDocument(value string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>Min OS</key>
	` + value + `
</dict>
</plist>`)
}

// TestEncodedVersion_UnmarshalPlist decodes real plist values through the library.
func TestEncodedVersion_UnmarshalPlist(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  EncodedVersion
		os    string
	}{
		{name: "integer", value: "<integer>4230</integer>", want: IntEncoded(4230), os: "10.8.6"},
		{name: "zero integer", value: "<integer>0</integer>", want: IntEncoded(0), os: NoOSBound},
		{name: "hex string", value: "<string>0x1058</string>", want: HexStringEncoded("0x1058"), os: "10.5.8"},
		{name: "zero string", value: "<string>0x0000</string>", want: HexStringEncoded("0x0000"), os: NoOSBound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var doc struct {
				MinOS EncodedVersion `plist:"Min OS"`
			}

			require.NoError(t, plist.Unmarshal(osBoundDocument(tc.value), &doc))
			require.Equal(t, tc.want, doc.MinOS)
			require.True(t, doc.MinOS.IsSet())

			got, err := DecodeOSVersion(doc.MinOS)
			require.NoError(t, err)
			require.Equal(t, tc.os, got)
		})
	}
}

// TestEncodedVersion_UnmarshalPlistRejects fails on values that are neither integers nor strings.
func TestEncodedVersion_UnmarshalPlistRejects(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"<real>10.5</real>", "<true/>", "<array><integer>1</integer></array>"} {
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			var doc struct {
				MinOS EncodedVersion `plist:"Min OS"`
			}

			err := plist.Unmarshal(osBoundDocument(value), &doc)
			require.ErrorContains(t, err, errUnsupportedType.Error())
			require.False(t, doc.MinOS.IsSet())
		})
	}
}

// TestEncodedVersion_NegativeInteger decodes a negative integer and rejects it as an OS version.
func TestEncodedVersion_NegativeInteger(t *testing.T) {
	t.Parallel()

	var doc struct {
		MinOS EncodedVersion `plist:"Min OS"`
	}

	require.NoError(t, plist.Unmarshal(osBoundDocument("<integer>-1</integer>"), &doc))
	require.Equal(t, IntEncoded(-1), doc.MinOS)

	_, err := DecodeOSVersion(doc.MinOS)
	require.ErrorIs(t, err, ErrDecode)
}
