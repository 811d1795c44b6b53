package resolver

import (
	"fmt"
	"slices"

	"github.com/oshokin/lync-update-info/internal/domain/feed"
	"github.com/oshokin/lync-update-info/internal/looseversion"
)

// ValidateTriggers fails unless the entry's trigger condition is exactly
// ["and", <trigger key>] and that trigger is present.
func ValidateTriggers(entry feed.Entry, product Product) error {
	if !slices.Equal(entry.TriggerCondition, product.TriggerCondition()) {
		return &feed.ValidationError{
			Title:  entry.Title,
			Reason: "unexpected trigger condition",
			Value:  fmt.Sprintf("%q", entry.TriggerCondition),
		}
	}

	if _, ok := entry.Triggers[product.TriggerKey]; !ok {
		return &feed.ValidationError{
			Title:  entry.Title,
			Reason: fmt.Sprintf("missing expected %s trigger", product.TriggerKey),
		}
	}

	return nil
}

// Requires returns the earlier update this entry depends on as
// ["<updateName>-<lowest trigger version>"], or nil when the entry applies to
// the baseline release or lists no versions.
func Requires(entry feed.Entry, product Product, updateName string) ([]string, error) {
	if err := ValidateTriggers(entry, product); err != nil {
		return nil, err
	}

	versions := entry.Triggers[product.TriggerKey].Versions
	if len(versions) == 0 {
		return nil, nil
	}

	lowest := looseversion.Sorted(versions)[0]
	if lowest == product.BaselineVersion {
		return nil, nil
	}

	return []string{updateName + "-" + lowest}, nil
}

// Installs returns a bundle installs item when a trigger watches the app's
// Info.plist, and nil otherwise.
func Installs(entry feed.Entry, product Product) ([]feed.InstallItem, error) {
	if err := ValidateTriggers(entry, product); err != nil {
		return nil, err
	}

	watchesInfoPlist := false

	for _, trigger := range entry.Triggers {
		if trigger.File == product.InfoPlistFile {
			watchesInfoPlist = true
			break
		}
	}

	if !watchesInfoPlist {
		return nil, nil
	}

	version := product.TitleVersion(entry.Title)

	return []feed.InstallItem{{
		ShortVersion:         version,
		BundleVersion:        version,
		Path:                 product.InstallsPath,
		Type:                 feed.InstallTypeBundle,
		VersionComparisonKey: feed.VersionComparisonKeyName,
	}}, nil
}
