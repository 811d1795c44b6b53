package feed

// Install detection constants for bundle-type installs items.
const (
	InstallTypeBundle        = "bundle"
	VersionComparisonKeyName = "CFBundleShortVersionString"
)

// InstallItem tells a software manager how to detect that an update is installed.
type InstallItem struct {
	ShortVersion         string `plist:"CFBundleShortVersionString" yaml:"CFBundleShortVersionString"`
	BundleVersion        string `plist:"CFBundleVersion" yaml:"CFBundleVersion"`
	Path                 string `plist:"path" yaml:"path"`
	Type                 string `plist:"type" yaml:"type"`
	VersionComparisonKey string `plist:"version_comparison_key" yaml:"version_comparison_key"`
}

// PackageInfo holds the pkginfo fields derived from a feed entry.
// Optional fields are left empty when they cannot be derived.
type PackageInfo struct {
	Name             string        `plist:"name" yaml:"name"`
	DisplayName      string        `plist:"display_name" yaml:"display_name"`
	Description      string        `plist:"description" yaml:"description"`
	MinimumOSVersion string        `plist:"minimum_os_version,omitempty" yaml:"minimum_os_version,omitempty"`
	MaximumOSVersion string        `plist:"maximum_os_version,omitempty" yaml:"maximum_os_version,omitempty"`
	Installs         []InstallItem `plist:"installs,omitempty" yaml:"installs,omitempty"`
	Requires         []string      `plist:"requires,omitempty" yaml:"requires,omitempty"`
}

// Result is everything handed back to the caller for one resolution.
type Result struct {
	URL               string       `plist:"url" yaml:"url"`
	PkgName           string       `plist:"pkg_name" yaml:"pkg_name"`
	DisplayName       string       `plist:"display_name" yaml:"display_name"`
	AdditionalPkgInfo *PackageInfo `plist:"additional_pkginfo" yaml:"additional_pkginfo"`
}

// ToMap converts the item to generic values using the serialised key names.
func (i InstallItem) ToMap() map[string]any {
	return map[string]any{
		"CFBundleShortVersionString": i.ShortVersion,
		"CFBundleVersion":            i.BundleVersion,
		"path":                       i.Path,
		"type":                       i.Type,
		"version_comparison_key":     i.VersionComparisonKey,
	}
}

// ToMap converts the record to generic values, skipping unset optional fields.
func (p *PackageInfo) ToMap() map[string]any {
	if p == nil {
		return nil
	}

	result := map[string]any{
		"name":         p.Name,
		"display_name": p.DisplayName,
		"description":  p.Description,
	}

	if p.MinimumOSVersion != "" {
		result["minimum_os_version"] = p.MinimumOSVersion
	}

	if p.MaximumOSVersion != "" {
		result["maximum_os_version"] = p.MaximumOSVersion
	}

	if len(p.Installs) > 0 {
		installs := make([]any, 0, len(p.Installs))
		for _, item := range p.Installs {
			installs = append(installs, item.ToMap())
		}

		result["installs"] = installs
	}

	if len(p.Requires) > 0 {
		requires := make([]any, 0, len(p.Requires))
		for _, r := range p.Requires {
			requires = append(requires, r)
		}

		result["requires"] = requires
	}

	return result
}

// ToMap converts the result to generic values.
func (r *Result) ToMap() map[string]any {
	if r == nil {
		return nil
	}

	result := map[string]any{
		"url":          r.URL,
		"pkg_name":     r.PkgName,
		"display_name": r.DisplayName,
	}

	if info := r.AdditionalPkgInfo.ToMap(); info != nil {
		result["additional_pkginfo"] = info
	}

	return result
}
