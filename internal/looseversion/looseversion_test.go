package looseversion

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCompare covers numeric, lexical, mixed and prefix orderings.
func TestCompare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"14.0.0", "14.0.0", 0},
		{"14.0.2", "14.0.10", -1},
		{"14.0.10", "14.0.2", 1},
		{"14.0", "14.0.0", -1},
		{"2.0", "12.0", -1},
		{"1.0a", "1.0b", -1},
		{"1.0", "1.0a", -1},
		{"1.0.1", "1.0a", -1},
		{"1.10", "1.9", 1},
		{"14.0.0", "14.0.0-beta", -1},
		{"100000000000000000000.1", "99999999999999999999.9", 1},
	}

	for _, tc := range cases {
		t.Run(tc.a+"_vs_"+tc.b, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, Compare(tc.a, tc.b))
			require.Equal(t, -tc.want, Compare(tc.b, tc.a))
		})
	}
}

// TestSorted_IndependentOfInputOrder verifies that shuffled inputs sort to the same sequence.
func TestSorted_IndependentOfInputOrder(t *testing.T) {
	t.Parallel()

	want := []string{"14.0.0", "14.0.1", "14.0.2", "14.0.9", "14.0.10", "14.1"}

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // Deterministic shuffle for the test.
	for range 20 {
		input := append([]string(nil), want...)
		rng.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })

		require.Equal(t, want, Sorted(input))
	}
}

// TestParse_KeepsOriginal checks that String returns the parsed text unchanged.
func TestParse_KeepsOriginal(t *testing.T) {
	t.Parallel()

	require.Equal(t, "14.0.3", Parse("14.0.3").String())
	require.Empty(t, Parse("").components)
	require.Equal(t, 0, Compare("", ""))
	require.Equal(t, -1, Compare("", "0"))
}
