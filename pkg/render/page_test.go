package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/donutdao/donut-ui/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Body:        vdom.Main(vdom.H1("Gallery")),
		Title:       "Donut <UI>",
		HTMLClass:   "dark",
		BodyClass:   "bg-background",
		Meta:        []MetaTag{{Name: "description", Content: "components"}},
		StyleSheets: []string{"/theme.css"},
		Styles:      []string{"body{margin:0}"},
		HeadScripts: []ScriptTag{{Src: "/cdn.js"}},
		Scripts:     []ScriptTag{{Inline: "console.log('</script>')"}},
	})
	if err != nil {
		t.Fatalf("RenderPage error: %v", err)
	}
	html := buf.String()

	checks := []string{
		"<!DOCTYPE html>\n",
		`<html lang="en" class="dark">`,
		"<title>Donut &lt;UI&gt;</title>",
		`<meta name="description" content="components">`,
		`<link rel="stylesheet" href="/theme.css">`,
		"<style>body{margin:0}</style>",
		`<script src="/cdn.js"></script>`,
		`<body class="bg-background">`,
		"<main><h1>Gallery</h1></main>",
		`console.log('<\/script>')`,
		"</body>\n</html>\n",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
	if strings.Index(html, "/cdn.js") > strings.Index(html, "</head>") {
		t.Error("head scripts must be inside head")
	}
}

func TestRenderPageStyleType(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Styles:    []string{"@theme { --radius-lg: 12px; }"},
		StyleType: "text/tailwindcss",
	})
	if err != nil {
		t.Fatalf("RenderPage error: %v", err)
	}
	want := `<style type="text/tailwindcss">@theme { --radius-lg: 12px; }</style>`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("page missing %q\n%s", want, buf.String())
	}
}

func TestRenderPageDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{}); err != nil {
		t.Fatalf("RenderPage error: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `<html lang="en">`) {
		t.Errorf("expected default lang, got %q", html)
	}
	if !strings.Contains(html, "<body>\n") {
		t.Errorf("expected bare body, got %q", html)
	}
	if strings.Contains(html, "<title>") {
		t.Errorf("unexpected title, got %q", html)
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	w := &flushCounter{Writer: &buf}

	sr := NewStreamingRenderer(w, RendererConfig{})
	if err := sr.RenderPage(PageData{Title: "x", Body: vdom.Div("y")}); err != nil {
		t.Fatalf("RenderPage error: %v", err)
	}
	if w.flushes != 2 {
		t.Errorf("flushes = %d, want 2", w.flushes)
	}
	if !strings.Contains(buf.String(), "<div>y</div>") {
		t.Errorf("missing body: %q", buf.String())
	}
}
