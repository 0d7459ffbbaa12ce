package render

import (
	"io"
	"net/http"
)

// StreamingRenderer renders pages to a writer, flushing once the head is
// written so the browser can fetch stylesheets and scripts while the body
// is still being serialized.
type StreamingRenderer struct {
	*Renderer
	w       io.Writer
	flusher http.Flusher
}

// NewStreamingRenderer creates a renderer writing to w. Flushing happens
// only when w is an http.Flusher.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	s := &StreamingRenderer{Renderer: NewRenderer(config), w: w}
	s.flusher, _ = w.(http.Flusher)
	return s
}

// RenderPage writes page as a complete document.
func (s *StreamingRenderer) RenderPage(page PageData) error {
	steps := []func(io.Writer, PageData) error{s.renderDocumentStart, s.renderHead}
	for _, step := range steps {
		if err := step(s.w, page); err != nil {
			return err
		}
	}
	s.flush()

	if err := s.renderBody(s.w, page); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, "</html>\n"); err != nil {
		return err
	}
	s.flush()
	return nil
}

func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
