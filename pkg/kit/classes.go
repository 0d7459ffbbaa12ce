package kit

import (
	"strings"

	"github.com/donutdao/donut-ui/pkg/vdom"
)

// splitClass removes class attributes from pass-through args and returns
// their joined value with the remaining args. Nested []any and []vdom.Attr
// are flattened the same way the element factories flatten them.
func splitClass(args []any) (string, []any) {
	var classes []string
	rest := make([]any, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case vdom.Attr:
			if v.Key == "class" {
				if s, ok := v.Value.(string); ok {
					classes = append(classes, s)
				}
				continue
			}
			rest = append(rest, v)
		case []vdom.Attr:
			for _, a := range v {
				if a.Key == "class" {
					if s, ok := a.Value.(string); ok {
						classes = append(classes, s)
					}
					continue
				}
				rest = append(rest, a)
			}
		case []any:
			c, r := splitClass(v)
			if c != "" {
				classes = append(classes, c)
			}
			rest = append(rest, r...)
		default:
			rest = append(rest, arg)
		}
	}

	return strings.Join(classes, " "), rest
}

// slot reports whether content renders to something.
func slot(content any) bool {
	return vdom.Node(content) != nil
}
