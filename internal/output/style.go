package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for human-readable output.
type Styles struct {
	Path    lipgloss.Style
	Heading lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles returns a style set. When color is false every style renders
// plain text.
func NewStyles(color bool) Styles {
	if !color {
		return Styles{}
	}
	return Styles{
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // Yellow
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Printer writes styled progress lines to a writer.
type Printer struct {
	w      io.Writer
	Styles Styles
}

// NewPrinter creates a Printer. Colors are enabled only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, Styles: NewStyles(IsTTY(w))}
}

// Heading prints a bold section line, e.g. "Start Installing Dependencies".
func (p *Printer) Heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.Styles.Heading.Render(fmt.Sprintf(format, args...)))
}

// Success prints a green status line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.Styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a yellow warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s: %s\n", p.Styles.Warning.Render("Warning"), fmt.Sprintf(format, args...))
}

// Line prints an unstyled line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Item prints an indented list entry.
func (p *Printer) Item(s string) {
	fmt.Fprintf(p.w, "  %s\n", p.Styles.Dim.Render(s))
}

// Path renders a filesystem path in the path style.
func (p *Printer) Path(path string) string {
	return p.Styles.Path.Render(path)
}

// IsTTY checks if a writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
