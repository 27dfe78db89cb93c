package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/cargoscan/pkg/deps"
	"github.com/matzehuels/cargoscan/pkg/errors"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
)

// DefaultFormat is used when no format is given.
const DefaultFormat = FormatJSON

var formatAliases = map[string]Format{
	"json":     FormatJSON,
	"csv":      FormatCSV,
	"md":       FormatMarkdown,
	"markdown": FormatMarkdown,
}

// ParseFormat maps a user-supplied selector to a Format. Matching is exact:
// "JSON" is not a valid selector.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[s]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported format: '%s'. Use 'json', 'csv', or 'markdown'.", s)
}

const (
	csvHeader = "project,section,name,version"
	mdHeader  = "| Project | Section | Dependency | Version |"
	mdRule    = "|---------|---------|------------|---------|"
)

// Write renders records in format f, followed by the summary line.
func Write(w io.Writer, f Format, records []deps.Record) error {
	bw := bufio.NewWriter(w)

	var err error
	switch f {
	case FormatJSON:
		err = writeJSON(bw, records)
	case FormatCSV:
		err = writeCSV(bw, records)
	case FormatMarkdown:
		err = writeMarkdown(bw, records)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format: '%s'", f)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s report", f)
	}

	fmt.Fprintln(bw, Summary(len(records)))
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s report", f)
	}
	return nil
}

// Summary returns the trailing count line.
func Summary(n int) string {
	return fmt.Sprintf("found %d deps !", n)
}

func writeJSON(w io.Writer, records []deps.Record) error {
	if records == nil {
		records = []deps.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

func writeCSV(w io.Writer, records []deps.Record) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := strings.Join([]string{r.Project, r.Section, r.Name, r.Version}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdown(w io.Writer, records []deps.Record) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", mdHeader, mdRule); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "| `%s` | `%s` | `%s` | `%s` |\n", r.Project, r.Section, r.Name, r.Version); err != nil {
			return err
		}
	}
	return nil
}
