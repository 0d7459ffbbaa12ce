package gallery

import (
	"strings"

	"github.com/donutdao/donut-ui/internal/reload"
	"github.com/donutdao/donut-ui/pkg/render"
	"github.com/donutdao/donut-ui/pkg/theme"
	"github.com/donutdao/donut-ui/pkg/vdom"
)

// TailwindBrowserURL is the Tailwind v4 browser build. It compiles
// text/tailwindcss style blocks in the page.
const TailwindBrowserURL = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"

// pageOptions carries the per-request parts of a gallery page.
type pageOptions struct {
	title  string
	body   *vdom.VNode
	theme  *theme.Theme
	reload bool
}

func pageData(opts pageOptions) (render.PageData, error) {
	var css strings.Builder
	if err := theme.WriteThemeCSS(&css, opts.theme); err != nil {
		return render.PageData{}, err
	}

	page := render.PageData{
		Title:       opts.title,
		Body:        opts.body,
		BodyClass:   "min-h-screen bg-background text-foreground font-sans antialiased",
		Meta:        []render.MetaTag{{Name: "color-scheme", Content: "dark"}},
		Styles:      []string{css.String()},
		StyleType:   "text/tailwindcss",
		HeadScripts: []render.ScriptTag{{Src: TailwindBrowserURL}},
	}
	if opts.theme.DarkMode != theme.DarkModeMedia {
		page.HTMLClass = "dark"
	}
	if opts.reload {
		page.Scripts = append(page.Scripts, render.ScriptTag{Inline: reload.ClientScript})
	}
	return page, nil
}

func layout(title string, content ...any) *vdom.VNode {
	return vdom.Main(vdom.Class("mx-auto max-w-5xl px-6 py-10 flex flex-col gap-10"),
		vdom.Header(vdom.Class("flex items-baseline justify-between border-b border-white/5 pb-4"),
			vdom.H1(vdom.Class("text-xl font-semibold text-corp-50"), title),
			vdom.Nav(vdom.Class("flex gap-4 text-sm text-corp-400"),
				vdom.A(vdom.Href("/"), "All"),
				vdom.A(vdom.Href("/theme.json"), "theme.json"),
				vdom.A(vdom.Href("/theme.css"), "theme.css"),
				vdom.A(vdom.Href("/tailwind.config.js"), "tailwind.config.js"),
			),
		),
		content,
	)
}

func section(c Component, instances []*vdom.VNode) *vdom.VNode {
	return vdom.Section(vdom.ID(c.Name), vdom.Data("component", c.Name), vdom.Class("flex flex-col gap-4"),
		vdom.H2(vdom.Class("text-sm font-medium uppercase tracking-wider text-corp-400"),
			vdom.A(vdom.Href("/components/"+c.Name), c.Title),
		),
		vdom.Div(vdom.Class("grid grid-cols-1 gap-4 sm:grid-cols-2"), instances),
	)
}
