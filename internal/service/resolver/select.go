package resolver

import (
	"slices"
	"strings"

	"github.com/oshokin/lync-update-info/internal/config"
	"github.com/oshokin/lync-update-info/internal/domain/feed"
)

// Select returns the entry named by selector.
//
// An empty selector or "latest" picks the entry with the greatest Date.
// Any other selector must appear, padded with one space on each side, in
// exactly one title; the padding keeps "2.0" from matching "12.0".
func Select(entries []feed.Entry, selector string) (feed.Entry, error) {
	if len(entries) == 0 {
		return feed.Entry{}, feed.ErrEmptyFeed
	}

	if config.IsLatest(selector) {
		return latest(entries), nil
	}

	padded := " " + selector + " "

	var matched []feed.Entry

	for _, e := range entries {
		if strings.Contains(e.Title, padded) {
			matched = append(matched, e)
		}
	}

	if len(matched) != 1 {
		return feed.Entry{}, &feed.VersionNotFoundError{
			Version: selector,
			Matches: len(matched),
			Titles:  feed.Titles(entries),
		}
	}

	return matched[0], nil
}

func latest(entries []feed.Entry) feed.Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b feed.Entry) int {
		return a.Date.Compare(b.Date)
	})

	return sorted[len(sorted)-1]
}
