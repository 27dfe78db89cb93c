package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cargoscan/pkg/deps"
	"github.com/matzehuels/cargoscan/pkg/manifest"
	"github.com/matzehuels/cargoscan/pkg/observability"
)

// Stats summarizes one scan.
type Stats struct {
	Manifests  int           // Paths yielded by the locator
	Parsed     int           // Manifests read, parsed and extracted
	Skipped    int           // Manifests that could not be read or parsed
	Duplicates int           // Paths yielded more than once
	Duration   time.Duration // Wall time of the scan
}

// Result holds the records of one scan in discovery order.
type Result struct {
	Records []deps.Record
	Stats   Stats
}

// Scanner runs sequential scans. It holds no per-scan state, so one Scanner
// can run any number of scans one after another.
type Scanner struct {
	locator manifest.Locator
	logger  *log.Logger
}

// NewScanner creates a scanner. A nil locator walks for Cargo.toml with no
// exclusions; a nil logger uses log.Default().
func NewScanner(loc manifest.Locator, logger *log.Logger) *Scanner {
	if loc == nil {
		loc = manifest.NewWalkLocator()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{locator: loc, logger: logger}
}

// Run scans root and returns every external dependency found. Per-manifest
// failures are logged at debug level and counted in Stats.Skipped; the only
// error returned is a cancelled or expired ctx.
func (s *Scanner) Run(ctx context.Context, root string) (*Result, error) {
	start := time.Now()
	hooks := observability.Scan()
	hooks.OnScanStart(ctx, root)

	agg := NewAggregator()
	var stats Stats
	err := s.locator.Locate(ctx, root, func(path string) error {
		stats.Manifests++
		if !agg.Visit(path) {
			stats.Duplicates++
			s.logger.Debug("manifest already scanned", "path", path)
			return nil
		}

		tree, err := manifest.ReadFile(path)
		if err != nil {
			stats.Skipped++
			s.logger.Debug("skipping manifest", "path", path, "err", err)
			hooks.OnManifestSkipped(ctx, path, err)
			return nil
		}

		records := deps.ExtractManifest(path, tree)
		agg.Add(records...)
		stats.Parsed++
		s.logger.Debug("scanned manifest", "path", path, "deps", len(records))
		hooks.OnManifestParsed(ctx, path, len(records))
		return nil
	})
	stats.Duration = time.Since(start)
	hooks.OnScanComplete(ctx, root, agg.Len(), stats.Duration, err)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return &Result{Records: agg.Records(), Stats: stats}, nil
}
