// Package report renders dependency records as JSON, CSV or Markdown.
//
// Every encoding is an order-preserving transcription of the record slice,
// followed by a one-line summary:
//
//	found 3 deps !
//
// Select an encoding with [ParseFormat]; unknown selectors return an
// [errors.ErrCodeInvalidFormat] error before anything is written.
//
//	f, err := report.ParseFormat("md")
//	if err != nil {
//	    return err
//	}
//	return report.Write(os.Stdout, f, records)
//
// [errors.ErrCodeInvalidFormat]: github.com/matzehuels/cargoscan/pkg/errors.ErrCodeInvalidFormat
package report
