// Package resolver picks one Lync update from the Microsoft AutoUpdate feed
// and derives pkginfo metadata from it.
//
// The feed does not carry versions, dependencies or install receipts as
// structured data, so they are recovered from entry titles and trigger
// descriptors. Entries whose triggers do not match the one known layout are
// rejected instead of producing a silently wrong record.
package resolver
