package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cargoscan/pkg/errors"
)

var (
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconError   = "✗"
	iconWarning = "!"
)

// PrintError writes the user-facing message of err to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+errors.UserMessage(err))
	if errors.Is(err, errors.ErrCodeInvalidFormat) {
		fmt.Fprintln(w, "  "+styleDim.Render("usage: cargoscan [root] [json|csv|md|markdown]"))
	}
}

// printWarning writes a warning line to w.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+fmt.Sprintf(format, args...))
}
