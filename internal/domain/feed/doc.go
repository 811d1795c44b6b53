// Package feed contains the domain types of the Microsoft AutoUpdate feed.
//
// It defines Entry (one update offering as published in the feed), Trigger,
// the EncodedVersion variant used for OS bounds, the PackageInfo record that
// is derived from an entry, and the error kinds reported while resolving.
package feed
