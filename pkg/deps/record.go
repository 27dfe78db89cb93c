package deps

// Section labels, as they appear in [Record.Section].
const (
	SectionDependencies      = "dependencies"
	SectionDevDependencies   = "dev-dependencies"
	SectionBuildDependencies = "build-dependencies"
	SectionWorkspace         = "workspace.dependencies"
)

// UnknownVersion is reported when a declaration carries no usable version.
const UnknownVersion = "unknown"

// Sections returns the top-level dependency sections in scan order.
func Sections() []string {
	return []string{SectionDependencies, SectionDevDependencies, SectionBuildDependencies}
}

// Record is one external dependency declaration.
type Record struct {
	Project string `json:"project"` // Manifest path that declared the dependency
	Section string `json:"section"` // Section label (e.g. "dev-dependencies")
	Name    string `json:"name"`    // Dependency key under the section
	Version string `json:"version"` // Requested version or git URL, never empty
}
