package domain

// Manifest describes one package manifest found in a project root.
type Manifest struct {
	Manager PackageManager
	Path    string // repo-relative, e.g. "package.json"
	Name    string // declared package/module name
	Version string // declared version, empty when the format has none
}

// PackageReport is the outcome of checking one manifest against its registry.
type PackageReport struct {
	ProjectName   string
	Manifest      Manifest
	LatestVersion string
	Freshness     Freshness
	Err           error
}

// Classify compares the declared version with the latest published one.
// Versions are compared as strings after trimming a leading "v"; anything
// without both sides present is unknown.
func (r *PackageReport) Classify() Freshness {
	if r.Err != nil || r.LatestVersion == "" || r.Manifest.Version == "" {
		return FreshnessUnknown
	}
	if trimV(r.Manifest.Version) == trimV(r.LatestVersion) {
		return FreshnessCurrent
	}
	return FreshnessStale
}

func trimV(v string) string {
	if len(v) > 0 && (v[0] == 'v' || v[0] == 'V') {
		return v[1:]
	}
	return v
}
