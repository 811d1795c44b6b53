// Package metadata fetches and decodes the Microsoft AutoUpdate feed.
//
// HTTPFetcher downloads the raw document with the client identification the
// feed requires, and Decode turns an XML or binary property list into feed
// entries.
package metadata
