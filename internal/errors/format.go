package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles. lipgloss drops the colors when stdout is not a terminal.
var (
	styleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleCode  = lipgloss.NewStyle().Bold(true)
	stylePath  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleFaint = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var colorEnabled = true

// DisableColors turns off styling in Format and PrintError.
func DisableColors() { colorEnabled = false }

// EnableColors turns styling back on.
func EnableColors() { colorEnabled = true }

func paint(s lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return s.Render(text)
}

// detailWidth is where Detail text wraps.
const detailWidth = 70

// Format renders the error for a terminal: a header, the source lines
// around Location, then detail, cause and hint blocks.
func (e *DonutError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		fmt.Fprintf(&b, "%s%s%s\n\n", paint(styleError, "ERROR "), paint(styleCode, e.Code+": "), e.Message)
	} else {
		fmt.Fprintf(&b, "%s%s\n\n", paint(styleError, "ERROR: "), e.Message)
	}

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", paint(stylePath, e.Location.String()))
		e.writeContext(&b)
	}

	if lines := wrapText(e.Detail, detailWidth); len(lines) > 0 {
		for _, line := range lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(styleFaint, "Cause: "), e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(stylePath, "Hint: "), e.Suggestion)
	}
	return b.String()
}

// writeContext prints the context lines with the failing line marked by an
// arrow and, when the column is known, a caret underneath.
func (e *DonutError) writeContext(b *strings.Builder) {
	if len(e.Context) == 0 {
		return
	}
	bar := paint(styleFaint, " │ ")
	first := e.contextStart()
	for i, line := range e.Context {
		n := first + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, bar, line)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", paint(styleMark, "→ "), n, bar, line)
		if col := e.Location.Column; col > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", paint(styleFaint, "│ "), strings.Repeat(" ", col-1), paint(styleMark, "^"))
		}
	}
	b.WriteString("\n")
}

// FormatCompact returns "location: code: message" on one line.
func (e *DonutError) FormatCompact() string {
	parts := make([]string, 0, 3)
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	return strings.Join(append(parts, e.Message), ": ")
}

type jsonError struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	Cause      string    `json:"cause,omitempty"`
}

// FormatJSON returns the error as a JSON object, as served by the gallery.
func (e *DonutError) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Location:   e.Location,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, _ := json.Marshal(out)
	return string(data)
}

// wrapText breaks text into lines of at most width bytes at word
// boundaries. Explicit newlines are kept.
func wrapText(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			continue
		}
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) > width:
				lines = append(lines, line)
				line = word
			default:
				line += " " + word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// PrintError writes err to w, formatted when it carries a DonutError.
func PrintError(w io.Writer, err error) {
	var de *DonutError
	if errors.As(err, &de) {
		fmt.Fprint(w, de.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", paint(styleError, "ERROR:"), err.Error())
}
