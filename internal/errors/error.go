package errors

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Category represents the area an error belongs to.
type Category string

const (
	CategoryTheme   Category = "theme"
	CategoryConfig  Category = "config"
	CategoryBuild   Category = "build"
	CategoryPublish Category = "publish"
	CategoryGallery Category = "gallery"
	CategoryCLI     Category = "cli"
)

// Location represents a position in a project file.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	switch {
	case l.Line <= 0:
		return l.File
	case l.Column > 0:
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	default:
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
}

// DonutError is a structured error with an optional file location and a
// suggested fix.
type DonutError struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category is the area the error belongs to.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position the error refers to.
	Location *Location

	// Context contains the lines surrounding Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

func (e *DonutError) Error() string {
	parts := make([]string, 0, 3)
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	if e.Wrapped != nil {
		parts = append(parts, e.Wrapped.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *DonutError) Unwrap() error { return e.Wrapped }

// WithLocation points the error at a file position and loads the
// surrounding lines. A line <= 0 refers to the file as a whole.
func (e *DonutError) WithLocation(file string, line, column int) *DonutError {
	e.Location = &Location{File: file, Line: line, Column: column}
	if line > 0 {
		e.Context = readContextLines(file, line)
	}
	return e
}

// decoderLine matches the line numbers reported by the YAML, TOML and JSON
// decoders ("line 7", "line 7, column 3", "(line 7 column 3)").
var decoderLine = regexp.MustCompile(`line (\d+)(?:,? column (\d+))?`)

// WithLocationFromError points the error at file, taking the line and
// column from a decoder error when it reports one.
func (e *DonutError) WithLocationFromError(file string, err error) *DonutError {
	line, col := 0, 0
	if err != nil {
		if m := decoderLine.FindStringSubmatch(err.Error()); m != nil {
			line, _ = strconv.Atoi(m[1])
			if m[2] != "" {
				col, _ = strconv.Atoi(m[2])
			}
		}
	}
	return e.WithLocation(file, line, col)
}

// WithSuggestion adds a fix suggestion to the error.
func (e *DonutError) WithSuggestion(s string) *DonutError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *DonutError) WithDetail(d string) *DonutError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail.
func (e *DonutError) WithDetailf(format string, args ...any) *DonutError {
	return e.WithDetail(fmt.Sprintf(format, args...))
}

// Wrap wraps another error.
func (e *DonutError) Wrap(err error) *DonutError {
	e.Wrapped = err
	return e
}

// contextLines is how many source lines Format shows around a location.
const contextLines = 5

// readContextLines returns up to contextLines lines of file centered on line.
func readContextLines(file string, line int) []string {
	f, err := os.Open(file)
	if err != nil {
		return nil
	}
	defer f.Close()

	first := max(line-contextLines/2, 1)
	last := line + contextLines/2

	var out []string
	sc := bufio.NewScanner(f)
	for n := 1; n <= last && sc.Scan(); n++ {
		if n >= first {
			out = append(out, sc.Text())
		}
	}
	return out
}

func (e *DonutError) contextStart() int {
	return max(e.Location.Line-contextLines/2, 1)
}

// New creates a DonutError from a registered code. The template's message
// and detail are copied; callers refine them with the With methods.
func New(code string) *DonutError {
	e := &DonutError{Code: code, Message: "Unknown error"}
	if t, ok := registry[code]; ok {
		e.Category, e.Message, e.Detail = t.Category, t.Message, t.Detail
	}
	return e
}

// Newf creates an uncoded error with a formatted message.
func Newf(category Category, format string, args ...any) *DonutError {
	return &DonutError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in a DonutError with the given code. An err that
// already carries a DonutError is returned unchanged.
func FromError(err error, code string) *DonutError {
	if err == nil {
		return nil
	}
	var de *DonutError
	if errors.As(err, &de) {
		return de
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first DonutError in err's chain, or "".
func Code(err error) string {
	var de *DonutError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
