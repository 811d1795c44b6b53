package resolver

import "strings"

// Product describes how one product's entries are laid out in the feed.
type Product struct {
	// TriggerKey names the trigger every entry must carry, e.g. "Lync".
	TriggerKey string
	// TitlePrefix and TitleSuffix surround the version in entry titles.
	TitlePrefix string
	TitleSuffix string
	// InfoPlistFile is the trigger file that identifies the app bundle.
	InfoPlistFile string
	// InstallsPath is the absolute Info.plist path used for install detection.
	InstallsPath string
	// BaselineVersion is the original release; updates applying to it need no predecessor.
	BaselineVersion string
}

// Lync returns the layout of Lync for Mac 2011 entries.
func Lync() Product {
	return Product{
		TriggerKey:      "Lync",
		TitlePrefix:     "Lync ",
		TitleSuffix:     " Update",
		InfoPlistFile:   "Contents/Info.plist",
		InstallsPath:    "/Applications/Lync/Contents/Info.plist",
		BaselineVersion: "14.0.0",
	}
}

// TriggerCondition returns the only supported trigger condition.
func (p Product) TriggerCondition() []string {
	return []string{"and", p.TriggerKey}
}

// TitleVersion strips the title prefix and suffix, leaving the version.
// Titles that drift from "<prefix><version><suffix>" yield whatever remains.
func (p Product) TitleVersion(title string) string {
	version := strings.ReplaceAll(title, p.TitlePrefix, "")
	return strings.ReplaceAll(version, p.TitleSuffix, "")
}
