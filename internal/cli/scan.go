package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cargoscan/pkg/errors"
	"github.com/matzehuels/cargoscan/pkg/manifest"
	"github.com/matzehuels/cargoscan/pkg/observability"
	"github.com/matzehuels/cargoscan/pkg/report"
	"github.com/matzehuels/cargoscan/pkg/scan"
)

// runScan validates the options, scans opts.root and writes the report.
// The format is checked before the walk so an unsupported selector never
// produces partial output.
func (c *CLI) runScan(ctx context.Context, opts scanOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	for _, dir := range opts.exclude {
		if err := errors.ValidateDirName(dir); err != nil {
			return err
		}
	}

	logger := scanLogger(loggerFromContext(ctx))
	logger.Infof("Scanning %s for %s", opts.root, manifest.FileName)

	loc := manifest.NewWalkLocator(opts.exclude...)
	loc.Logger = func(msg string, args ...any) { logger.Debugf(msg, args...) }

	prog := newProgress(logger)
	res, err := scan.NewScanner(loc, logger).Run(ctx, opts.root)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Scanned %d manifests, %d skipped", res.Stats.Parsed, res.Stats.Skipped))

	if res.Stats.Manifests == 0 {
		printWarning(c.Stderr, "no %s found under %s", manifest.FileName, opts.root)
	}

	out, err := c.openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	err = report.Write(out, format, res.Records)
	observability.Report().OnReport(ctx, string(format), len(res.Records), err)
	if err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote %s report to %s", format, opts.output)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns c.Stdout for an empty path, otherwise creates the file
// at path, overwriting if it exists.
func (c *CLI) openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{c.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return f, nil
}
