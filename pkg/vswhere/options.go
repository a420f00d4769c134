package vswhere

// Known property names understood by vswhere's -property switch.
const (
	PropertyInstallationPath    = "installationPath"
	PropertyInstallationVersion = "installationVersion"
)

// Options describes a vswhere query. The zero value selects the tool's
// defaults; only populated fields emit arguments. Combinations the tool
// rejects (for example Path together with other selectors, or Legacy
// with Products/Requires) are passed through unvalidated and surface as
// a non-zero exit at invocation time.
type Options struct {
	// Find returns file paths matching this glob pattern under each
	// installation path.
	Find string

	// All finds every instance, even incomplete ones that may not launch.
	All bool

	// Latest returns only the newest and last installed instance.
	Latest bool

	// Legacy also searches Visual Studio 2015 and older. Nil means
	// unset, which lets GetLatest apply its own default.
	Legacy *bool

	// Path selects the instance owning the given file path.
	Path string

	// Prerelease includes prerelease installations in the search.
	Prerelease bool

	// Products lists product IDs to match. One element stands in for
	// the tool's single-ID form.
	Products []string

	// Property names a single field to return per instance instead of
	// the full record. Setting it switches output to one line per
	// instance.
	Property string

	// Requires lists workload or component IDs an instance must have.
	Requires []string

	// RequiresAny matches instances with any of the Requires IDs
	// rather than all of them.
	RequiresAny bool

	// Sort orders instances from newest to oldest.
	Sort bool

	// Version restricts results to a version range, e.g. "[15.0,16.0)".
	Version string
}

// legacyValue returns the effective legacy flag applying defaults.
func (o Options) legacyValue() bool {
	if o.Legacy == nil {
		return false
	}
	return *o.Legacy
}

// Bool returns a pointer to v, for populating Options.Legacy.
func Bool(v bool) *bool { return &v }

// Args renders the options as vswhere command-line tokens. The order is
// fixed so argument lists compare reproducibly; vswhere itself accepts
// any order. Zero options yield an empty slice.
func (o Options) Args() []string {
	var args []string

	if o.Find != "" {
		args = append(args, "-find", o.Find)
	}
	if o.All {
		args = append(args, "-all")
	}
	if o.Latest {
		args = append(args, "-latest")
	}
	if o.legacyValue() {
		args = append(args, "-legacy")
	}
	if o.Path != "" {
		args = append(args, "-path", o.Path)
	}
	if o.Prerelease {
		args = append(args, "-prerelease")
	}
	if len(o.Products) > 0 {
		args = append(args, "-products")
		args = append(args, o.Products...)
	}
	if o.Property != "" {
		args = append(args, "-property", o.Property)
	}
	if len(o.Requires) > 0 {
		args = append(args, "-requires")
		args = append(args, o.Requires...)
	}
	if o.RequiresAny {
		args = append(args, "-requiresAny")
	}
	if o.Sort {
		args = append(args, "-sort")
	}
	if o.Version != "" {
		args = append(args, "-version", o.Version)
	}

	return args
}
