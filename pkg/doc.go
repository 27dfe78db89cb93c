// Package pkg provides the libraries behind the cargoscan command.
//
// # Overview
//
// cargoscan walks a directory tree, parses every Cargo.toml it finds and
// reports the dependencies each manifest pulls from a registry or a git
// remote. The pkg directory is organized as:
//
//  1. [manifest] - Locating and parsing Cargo.toml files into an ordered value tree
//  2. [deps] - Classifying dependency declarations and building records
//  3. [scan] - Walking a tree, deduplicating manifests, aggregating records
//  4. [report] - JSON, CSV and Markdown output
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The data flow for one invocation:
//
//	directory tree
//	     ↓
//	[manifest.WalkLocator] (yield Cargo.toml paths)
//	     ↓
//	[manifest.ReadFile] (decode into *manifest.Table)
//	     ↓
//	[deps.ExtractManifest] (external entries only)
//	     ↓
//	[scan.Aggregator] (dedup by project, keep order)
//	     ↓
//	[report.Write] (json / csv / md + "found N deps !")
//
// # Quick Start
//
//	res, err := scan.NewScanner(manifest.NewWalkLocator("target"), nil).Run(ctx, ".")
//	if err != nil {
//	    return err
//	}
//	return report.Write(os.Stdout, report.FormatCSV, res.Records)
//
// Path dependencies and entries inherited with workspace = true never
// produce records. Versions that cannot be determined are reported as
// [deps.UnknownVersion].
package pkg
