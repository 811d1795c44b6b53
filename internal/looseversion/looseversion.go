// Package looseversion orders free-form dotted version strings.
//
// A version is split into runs of digits, runs of lowercase letters and runs
// of any other characters; dots only separate components. Numeric components
// compare numerically, the others lexically, and a numeric component sorts
// before a non-numeric one. When one sequence is a prefix of the other the
// shorter one is lower, so "14.0" < "14.0.0" < "14.0.0a".
package looseversion

import (
	"math/big"
	"slices"
	"strings"
)

type component struct {
	num *big.Int // nil for non-numeric components
	str string
}

func (c component) cmp(o component) int {
	switch {
	case c.num != nil && o.num != nil:
		return c.num.Cmp(o.num)
	case c.num != nil:
		return -1
	case o.num != nil:
		return 1
	default:
		return strings.Compare(c.str, o.str)
	}
}

// Version is a parsed loose version.
type Version struct {
	original   string
	components []component
}

type charClass uint8

const (
	classDot charClass = iota
	classDigit
	classLower
	classOther
)

func classify(r rune) charClass {
	switch {
	case r == '.':
		return classDot
	case r >= '0' && r <= '9':
		return classDigit
	case r >= 'a' && r <= 'z':
		return classLower
	default:
		return classOther
	}
}

// Parse splits s into components. Every string is a valid loose version.
func Parse(s string) Version {
	v := Version{original: s}

	var (
		current strings.Builder
		class   charClass
	)

	flush := func() {
		if current.Len() == 0 {
			return
		}

		c := component{str: current.String()}
		if class == classDigit {
			c.num, _ = new(big.Int).SetString(c.str, 10)
		}

		v.components = append(v.components, c)
		current.Reset()
	}

	for _, r := range s {
		next := classify(r)
		if next != class {
			flush()
			class = next
		}

		if next == classDot {
			continue
		}

		current.WriteRune(r)
	}

	flush()

	return v
}

// String returns the original text.
func (v Version) String() string {
	return v.original
}

// Compare returns -1, 0 or +1 as v sorts before, equal to or after w.
func (v Version) Compare(w Version) int {
	n := min(len(v.components), len(w.components))
	for i := range n {
		if diff := v.components[i].cmp(w.components[i]); diff != 0 {
			return diff
		}
	}

	switch {
	case len(v.components) < len(w.components):
		return -1
	case len(v.components) > len(w.components):
		return 1
	default:
		return 0
	}
}

// Compare parses a and b and compares them.
func Compare(a, b string) int {
	return Parse(a).Compare(Parse(b))
}

// Sort orders versions ascending in place. Equal versions keep their order.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Compare)
}

// Sorted returns an ascending copy of versions.
func Sorted(versions []string) []string {
	sorted := slices.Clone(versions)
	Sort(sorted)

	return sorted
}
