// Package scan walks a directory tree and aggregates the external
// dependencies declared by every Cargo manifest in it.
//
// # Overview
//
// A [Scanner] ties the pieces together:
//
//	manifest.Locator → manifest.ReadFile → deps.ExtractManifest → Aggregator
//
// Manifests are processed one at a time, in the order the locator yields
// them. A manifest that cannot be read or parsed is skipped; it never aborts
// the scan. The [Aggregator] remembers which manifest paths were already
// processed, so a path yielded twice contributes records only once.
//
// # Usage
//
//	s := scan.NewScanner(manifest.NewWalkLocator("target"), logger)
//	res, err := s.Run(ctx, ".")
//	if err != nil {
//	    return err // only on cancellation
//	}
//	fmt.Println(len(res.Records), res.Stats.Skipped)
package scan
