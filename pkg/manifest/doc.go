// Package manifest locates and parses Cargo manifests.
//
// # Overview
//
// A scan needs two things from the filesystem: the list of Cargo.toml files
// under a root directory, and the parsed contents of each one. This package
// provides both:
//
//   - [Locator] / [WalkLocator] walk a directory tree and yield manifest paths
//   - [Parse] / [ReadFile] turn manifest text into a [Value] tree
//
// # Value Trees
//
// Parsed manifests are represented as [Value], a tagged variant over the
// shapes TOML can produce (table, array, string, bool, and everything else).
// Callers inspect values through capability-checked accessors rather than
// type switches on any:
//
//	root, _ := manifest.Parse(data)
//	if deps, ok := root.Get("dependencies"); ok {
//	    if tbl, ok := deps.AsTable(); ok {
//	        for _, name := range tbl.Keys() {
//	            decl, _ := tbl.Get(name)
//	            if v, ok := decl.AsString(); ok {
//	                fmt.Println(name, v)
//	            }
//	        }
//	    }
//	}
//
// Tables keep their keys in declaration order, so anything derived from a
// [Table] is reproducible across runs.
package manifest
