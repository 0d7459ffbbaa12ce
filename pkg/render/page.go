package render

import (
	"io"

	"github.com/donutdao/donut-ui/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// HTMLClass is the class attribute of the html element. Class-based dark
	// mode toggles on "dark" here.
	HTMLClass string

	// BodyClass is the class attribute of the body element.
	BodyClass string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS blocks
	Styles []string

	// StyleType is the type attribute of every inline style block, e.g.
	// "text/tailwindcss" for the Tailwind browser build. Empty omits it.
	StyleType string

	// HeadScripts are emitted at the end of <head>, in order.
	HeadScripts []ScriptTag

	// Scripts are emitted at the end of <body>, in order.
	Scripts []ScriptTag
}

// MetaTag is a <meta name content> element.
type MetaTag struct {
	Name    string
	Content string
}

// ScriptTag is a <script> element, external when Src is set and inline
// otherwise.
type ScriptTag struct {
	Src    string
	Module bool
	Inline string
}

// RenderPage renders a complete HTML document to w.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	for _, step := range []func(io.Writer, PageData) error{r.renderDocumentStart, r.renderHead, r.renderBody} {
		if err := step(w, page); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</html>\n")
	return err
}

// tag writes an opening tag. attrs are name/value pairs; pairs with an
// empty value are left out.
func (hw *htmlWriter) tag(name string, attrs ...string) {
	hw.str("<" + name)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] != "" {
			hw.str(" " + attrs[i] + `="` + escapeAttr(attrs[i+1]) + `"`)
		}
	}
	hw.str(">")
}

func (r *Renderer) renderDocumentStart(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	hw := &htmlWriter{w: w}
	hw.str("<!DOCTYPE html>\n")
	hw.tag("html", "lang", lang, "class", page.HTMLClass)
	hw.str("\n")
	return hw.err
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	hw := &htmlWriter{w: w}
	hw.str("<head>\n")
	hw.str("  <meta charset=\"utf-8\">\n")
	hw.str("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if page.Title != "" {
		hw.str("  <title>" + escapeHTML(page.Title) + "</title>\n")
	}
	for _, m := range page.Meta {
		hw.str("  ")
		hw.tag("meta", "name", m.Name, "content", m.Content)
		hw.str("\n")
	}
	for _, href := range page.StyleSheets {
		hw.str("  ")
		hw.tag("link", "rel", "stylesheet", "href", href)
		hw.str("\n")
	}
	for _, css := range page.Styles {
		hw.str("  ")
		hw.tag("style", "type", page.StyleType)
		hw.str(escapeScript(css) + "</style>\n")
	}
	for _, s := range page.HeadScripts {
		script(hw, s)
	}
	hw.str("</head>\n")
	return hw.err
}

func (r *Renderer) renderBody(w io.Writer, page PageData) error {
	hw := &htmlWriter{w: w}
	hw.tag("body", "class", page.BodyClass)
	hw.str("\n")
	r.node(hw, page.Body, 0)
	hw.str("\n")
	for _, s := range page.Scripts {
		script(hw, s)
	}
	hw.str("</body>\n")
	return hw.err
}

func script(hw *htmlWriter, s ScriptTag) {
	typ := ""
	if s.Module {
		typ = "module"
	}
	hw.str("  ")
	hw.tag("script", "src", s.Src, "type", typ)
	hw.str(escapeScript(s.Inline) + "</script>\n")
}
