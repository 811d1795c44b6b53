package feed

import "time"

// Entry is one update offering from the feed.
type Entry struct {
	// Title has the form "<Product> <version> Update".
	Title string `plist:"Title"`
	// Date is the publication date used to find the latest entry.
	Date time.Time `plist:"Date"`
	// Location is the download URL of the installer image.
	Location string `plist:"Location"`
	// Payload is the package name inside the downloaded image.
	Payload string `plist:"Payload"`
	// ShortDescription is a short HTML fragment describing the update.
	ShortDescription string `plist:"Short Description"`
	// MinOS is the encoded minimum supported OS version.
	MinOS EncodedVersion `plist:"Min OS"`
	// MaxOS is the encoded maximum supported OS version.
	MaxOS EncodedVersion `plist:"Max OS"`
	// TriggerCondition is expected to be ["and", <trigger key>].
	TriggerCondition []string `plist:"Trigger Condition"`
	// Triggers maps trigger keys to the installed component they watch.
	Triggers map[string]Trigger `plist:"Triggers"`
}

// Trigger associates a feed entry with an installed file and the versions it updates.
type Trigger struct {
	// File is a path relative to the application bundle.
	File string `plist:"File"`
	// Versions lists installed versions this update applies to, in no particular order.
	Versions []string `plist:"Versions"`
}

// Titles returns the titles of entries in feed order.
func Titles(entries []Entry) []string {
	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		titles = append(titles, e.Title)
	}

	return titles
}
