// Package report formats numex results for the terminal: section headers,
// error-comparison lines and vectors.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/numex/matrix"
	"github.com/katalvlaran/numex/series"
)

const (
	comparisonFormat = "%s | x=%8.2f | approx=% .16e | N=%5d | exp=% .16e | absErr=% .3e | relErr=% .3e\n"
	vectorOpen       = "[ "
	vectorClose      = " ]"
	vectorSep        = ", "
)

// Printer writes report lines to an io.Writer. The first write error is kept
// and every later call becomes a no-op; check it with Err.
type Printer struct {
	w      io.Writer
	header lipgloss.Style
	err    error
}

// New returns a Printer on w. Styling follows the color profile of w, so
// output to a pipe or buffer is plain text.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:      w,
		header: r.NewStyle().Bold(true),
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

// Printf writes a formatted line fragment.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Header writes a blank line followed by a bold section title.
func (p *Printer) Header(title string) {
	p.Printf("\n%s\n", p.header.Render("--- "+title+" ---"))
}

// Sum writes "label: S(k) = v" for one summation result.
func (p *Printer) Sum(label string, r series.Result) {
	p.Printf("%s: S(%d) = %.16e\n", label, r.Iterations, r.Value)
}

// Comparison writes one error line for an approximation that used n terms.
func (p *Printer) Comparison(label string, c series.Comparison, n int) {
	p.Printf(comparisonFormat, label, c.X, c.Approx, n, c.Exact, c.AbsErr, c.RelErr)
}

// Vector writes v on its own line as "[ a, b, c ]".
func (p *Printer) Vector(v matrix.Vector) {
	p.Printf("%s\n", FormatVector(v))
}

// FormatVector renders v with six decimals per component.
func FormatVector(v matrix.Vector) string {
	var b strings.Builder
	b.WriteString(vectorOpen)
	for i, x := range v {
		if i > 0 {
			b.WriteString(vectorSep)
		}
		fmt.Fprintf(&b, "%.6f", x)
	}
	b.WriteString(vectorClose)

	return b.String()
}
