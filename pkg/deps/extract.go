package deps

import "github.com/matzehuels/cargoscan/pkg/manifest"

// Locality classifies where a declaration is resolved from.
type Locality int

const (
	External  Locality = iota // registry or remote source
	Local                     // path = "..." dependency
	Workspace                 // workspace = true dependency
)

func (l Locality) String() string {
	switch l {
	case Local:
		return "local"
	case Workspace:
		return "workspace"
	default:
		return "external"
	}
}

// Classify reports the locality of a single dependency declaration.
// A path key wins over workspace = true when both are present.
func Classify(decl manifest.Value) Locality {
	tbl, ok := decl.AsTable()
	if !ok {
		return External
	}
	if tbl.Has("path") {
		return Local
	}
	if ws, ok := tbl.Get("workspace"); ok {
		if b, ok := ws.AsBool(); ok && b {
			return Workspace
		}
	}
	return External
}

// ResolveVersion returns the display version of a declaration: the string
// itself, or a table's version key, or failing that its git key. A key that
// is present but not a string, or an empty string, yields [UnknownVersion].
func ResolveVersion(decl manifest.Value) string {
	if s, ok := decl.AsString(); ok {
		return orUnknown(s)
	}
	tbl, ok := decl.AsTable()
	if !ok {
		return UnknownVersion
	}
	src, ok := tbl.Get("version")
	if !ok {
		src, ok = tbl.Get("git")
	}
	if !ok {
		return UnknownVersion
	}
	s, _ := src.AsString()
	return orUnknown(s)
}

func orUnknown(s string) string {
	if s == "" {
		return UnknownVersion
	}
	return s
}

// Extract returns one record per external entry of a section table, in
// declaration order. A section that is not a table yields nothing.
func Extract(project, section string, v manifest.Value) []Record {
	tbl, ok := v.AsTable()
	if !ok {
		return nil
	}

	var out []Record
	for _, name := range tbl.Keys() {
		decl, _ := tbl.Get(name)
		if Classify(decl) != External {
			continue
		}
		out = append(out, Record{
			Project: project,
			Section: section,
			Name:    name,
			Version: ResolveVersion(decl),
		})
	}
	return out
}

// ExtractManifest extracts every section of a parsed manifest: the
// top-level sections from [Sections], then [SectionWorkspace].
func ExtractManifest(project string, root *manifest.Table) []Record {
	var out []Record
	for _, section := range Sections() {
		if v, ok := root.Get(section); ok {
			out = append(out, Extract(project, section, v)...)
		}
	}

	if ws, ok := root.Get("workspace"); ok {
		if wsTable, ok := ws.AsTable(); ok {
			if v, ok := wsTable.Get("dependencies"); ok {
				out = append(out, Extract(project, SectionWorkspace, v)...)
			}
		}
	}
	return out
}
