// Package render prints results to the terminal.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-advent/pkg/models"
)

// Styles used by the printer. Colors are dropped when the output is not a
// terminal.
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Answer lipgloss.Style
	Faint  lipgloss.Style
	OK     lipgloss.Style
	Fail   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Label:  r.NewStyle().Foreground(lipgloss.Color("8")),
		Answer: r.NewStyle().Bold(true),
		Faint:  r.NewStyle().Faint(true),
		OK:     r.NewStyle().Foreground(lipgloss.Color("10")),
		Fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Printer writes styled output to w.
type Printer struct {
	w      io.Writer
	Styles Styles
}

// New creates a printer for w.
func New(w io.Writer) *Printer {
	return &Printer{w: w, Styles: newStyles(lipgloss.NewRenderer(w))}
}

// Header prints "Day N: Title".
func (p *Printer) Header(day int, title string) {
	fmt.Fprintln(p.w, p.Styles.Header.Render(fmt.Sprintf("Day %d: %s", day, title)))
}

// Answers prints a day header followed by both answers.
func (p *Printer) Answers(r *models.Result) {
	p.Header(r.Day, r.Title)
	p.part("Part One", r.PartOne)
	p.part("Part Two", r.PartTwo)
}

// Timing prints where the answers came from and how long they took.
func (p *Printer) Timing(r *models.Result) {
	fmt.Fprintln(p.w, p.Styles.Faint.Render(fmt.Sprintf("  %s in %s", r.Input, r.Duration.Round(time.Microsecond))))
}

// Check prints a single verification line. expected is empty when the input
// carried no pinned answers.
func (p *Printer) Check(r *models.Result, expectedOne, expectedTwo string, checked, ok bool) {
	var status string
	switch {
	case !checked:
		status = p.Styles.Faint.Render("unchecked")
	case ok:
		status = p.Styles.OK.Render("ok")
	default:
		status = p.Styles.Fail.Render("FAIL")
	}
	fmt.Fprintf(p.w, "%s %s\n", p.Styles.Header.Render(fmt.Sprintf("Day %d: %s", r.Day, r.Title)), status)

	if checked && !ok {
		p.mismatch("Part One", expectedOne, r.PartOne)
		p.mismatch("Part Two", expectedTwo, r.PartTwo)
	}
}

func (p *Printer) part(label, answer string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Styles.Label.Render(label+":"), p.Styles.Answer.Render(answer))
}

func (p *Printer) mismatch(label, expected, got string) {
	if expected == "" || expected == got {
		return
	}
	fmt.Fprintf(p.w, "  %s expected %s, got %s\n",
		p.Styles.Label.Render(label+":"), p.Styles.OK.Render(expected), p.Styles.Fail.Render(got))
}
