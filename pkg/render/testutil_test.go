package render

import (
	"io"
	"regexp"
	"testing"
)

// attrValue returns the raw, still-escaped value of attr in html.
func attrValue(t *testing.T, html, attr string) string {
	t.Helper()
	re := regexp.MustCompile(`\s` + regexp.QuoteMeta(attr) + `="([^"]*)"`)
	m := re.FindStringSubmatch(html)
	if m == nil {
		t.Fatalf("no %s attribute in %q", attr, html)
	}
	return m[1]
}

// flushCounter records how often a streaming render flushes.
type flushCounter struct {
	io.Writer
	flushes int
}

func (w *flushCounter) Flush() { w.flushes++ }
