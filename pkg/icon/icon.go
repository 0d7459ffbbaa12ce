// Package icon provides the inline SVG icons used by the component kit.
//
// Icons follow the lucide conventions: a 24x24 view box, no fill, and a
// currentColor stroke so they pick up the surrounding text color.
package icon

import "github.com/donutdao/donut-ui/pkg/vdom"

// DefaultSize is the rendered width and height when a size <= 0 is given.
const DefaultSize = 24

// svg builds the shared lucide frame around the given shapes.
func svg(size int, shapes ...any) *vdom.VNode {
	if size <= 0 {
		size = DefaultSize
	}
	args := []any{
		vdom.CustomAttr("xmlns", "http://www.w3.org/2000/svg"),
		vdom.Width(size),
		vdom.Height(size),
		vdom.ViewBox("0 0 24 24"),
		vdom.Fill("none"),
		vdom.Stroke("currentColor"),
		vdom.StrokeWidth("2"),
		vdom.StrokeLinecap("round"),
		vdom.StrokeLinejoin("round"),
		vdom.AriaHidden(true),
	}
	return vdom.Svg(append(args, shapes...)...)
}

// Search renders the magnifying glass icon.
func Search(size int) *vdom.VNode {
	return svg(size,
		vdom.El("circle",
			vdom.CustomAttr("cx", "11"),
			vdom.CustomAttr("cy", "11"),
			vdom.CustomAttr("r", "8"),
		),
		vdom.El("path", vdom.CustomAttr("d", "m21 21-4.3-4.3")),
	)
}

// Sparkles renders a four-point star, used by the gallery for card icons.
func Sparkles(size int) *vdom.VNode {
	return svg(size,
		vdom.El("path", vdom.CustomAttr("d", "m12 3-1.9 5.8a2 2 0 0 1-1.3 1.3L3 12l5.8 1.9a2 2 0 0 1 1.3 1.3L12 21l1.9-5.8a2 2 0 0 1 1.3-1.3L21 12l-5.8-1.9a2 2 0 0 1-1.3-1.3Z")),
	)
}
