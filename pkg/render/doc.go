// Package render provides server-side rendering of vdom trees to HTML.
//
// The renderer converts VNode trees into HTML strings or streams:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, required, etc.)
//   - Empty attribute values kept as key="", except an empty class or style
//   - Optional hydration IDs for elements that carry event handlers
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Body:        bodyNode,
//	    Title:       "Gallery",
//	    HTMLClass:   "dark",
//	    StyleSheets: []string{"/theme.css"},
//	}
//	err := renderer.RenderPage(w, page)
//
// # Event Handlers
//
// Handlers are never serialized. Each handler key produces a
// data-on-<event> marker, and with RendererConfig.HandlerIDs the element
// also gets a data-hid attribute whose handlers are available from
// GetHandlers after rendering.
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted using
// KindRaw nodes, which must only carry trusted content. Tag and attribute
// names are checked before they are written.
package render
