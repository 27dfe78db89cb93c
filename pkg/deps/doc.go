// Package deps extracts external dependency declarations from Cargo manifests.
//
// # Overview
//
// A Cargo.toml declares dependencies in several sections. Some entries are
// resolved from a registry or a git remote; others point at a sibling crate
// on disk or defer to the workspace root. This package walks the sections of
// one parsed manifest and turns each externally-resolved entry into a
// [Record].
//
// # Sections
//
// The top-level sections [SectionDependencies], [SectionDevDependencies] and
// [SectionBuildDependencies] are scanned in that order, followed by
// [SectionWorkspace] when the manifest has a [workspace.dependencies] table.
// Missing sections contribute nothing.
//
// # Classification
//
// An entry is skipped when its declaration is a table that
//
//   - has a path key (a local crate in the same tree), or
//   - has workspace = true (inherited from the workspace manifest).
//
// Workspace inheritance is detected, not resolved: the parent manifest is
// never consulted.
//
// # Versions
//
// The record version is the declaration string itself, or for table
// declarations the version key, falling back to the git key. Anything else
// yields [UnknownVersion].
//
//	[dependencies]
//	serde = "1.0"                                   # 1.0
//	tokio = { version = "1", features = ["full"] }  # 1
//	rand  = { git = "https://github.com/rust-random/rand" }
//	local = { path = "../local" }                   # skipped
package deps
