package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/donutdao/donut-ui/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty indents nested block elements. Meant for reading output, not
	// for serving it.
	Pretty bool

	// Indent is one level of indentation in pretty mode. Defaults to two
	// spaces.
	Indent string

	// HandlerIDs gives every element carrying event handlers a data-hid
	// attribute and records its handlers for GetHandlers.
	HandlerIDs bool
}

// Renderer serializes VNode trees to HTML. It is not safe for concurrent
// use; create one per request.
type Renderer struct {
	config   RendererConfig
	hids     uint32
	handlers map[string]any
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config, handlers: make(map[string]any)}
}

// HTML renders node with a default renderer.
func HTML(node *vdom.VNode) (string, error) {
	return NewRenderer(RendererConfig{}).RenderToString(node)
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	err := r.RenderToWriter(&buf, node)
	return buf.String(), err
}

// RenderToWriter renders node to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := &htmlWriter{w: w}
	r.node(hw, node, 0)
	return hw.err
}

// GetHandlers returns the handlers recorded under HandlerIDs, keyed by
// hid and prop name, e.g. "h1_onclick".
func (r *Renderer) GetHandlers() map[string]any {
	return r.handlers
}

// Reset clears recorded handlers and restarts hid numbering.
func (r *Renderer) Reset() {
	r.hids = 0
	r.handlers = make(map[string]any)
}

// htmlWriter keeps the first write or validation error and ignores every
// write after it.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) str(s string) {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) fail(format string, args ...any) {
	if hw.err == nil {
		hw.err = fmt.Errorf("render: "+format, args...)
	}
}

func (r *Renderer) node(hw *htmlWriter, n *vdom.VNode, depth int) {
	if n == nil || hw.err != nil {
		return
	}
	switch n.Kind {
	case vdom.KindElement:
		r.element(hw, n, depth)
	case vdom.KindText:
		hw.str(escapeHTML(n.Text))
	case vdom.KindRaw:
		hw.str(n.Text)
	case vdom.KindFragment:
		for _, c := range n.Children {
			r.node(hw, c, depth)
		}
	case vdom.KindComponent:
		if n.Comp != nil {
			r.node(hw, n.Comp.Render(), depth)
		}
	default:
		hw.fail("unknown node kind %d", n.Kind)
	}
}

func (r *Renderer) element(hw *htmlWriter, n *vdom.VNode, depth int) {
	tag := n.Tag
	if !validTagName(tag) {
		hw.fail("invalid tag name %q", tag)
		return
	}

	pretty := r.config.Pretty
	if pretty && depth > 0 {
		r.indent(hw, depth)
	}

	hw.str("<" + tag)
	r.attributes(hw, n)
	if r.config.HandlerIDs && n.IsInteractive() {
		r.hids++
		hid := "h" + strconv.FormatUint(uint64(r.hids), 10)
		hw.str(` data-hid="` + hid + `"`)
		for key, value := range n.Props {
			if isHandlerProp(key, value) {
				r.handlers[hid+"_"+key] = value
			}
		}
	}
	hw.str(">")

	if isVoidElement(tag) {
		if pretty {
			hw.str("\n")
		}
		return
	}

	block := pretty && len(n.Children) > 0 && !isInlineElement(tag)
	if block {
		hw.str("\n")
	}
	for _, c := range n.Children {
		r.node(hw, c, depth+1)
	}
	if block {
		r.indent(hw, depth)
	}
	hw.str("</" + tag + ">")
	if pretty {
		hw.str("\n")
	}
}

// attributes writes props in key order. Handlers become data-on-* markers
// after the regular attributes; keys starting with "_" and "key" are
// internal and skipped. An empty string renders as key="" except for class
// and style, which are dropped when empty.
func (r *Renderer) attributes(hw *htmlWriter, n *vdom.VNode) {
	keys := make([]string, 0, len(n.Props))
	for key := range n.Props {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var events []string
	for _, key := range keys {
		value := n.Props[key]
		switch {
		case strings.HasPrefix(key, "_"), key == "key":
			continue
		case isHandlerProp(key, value):
			events = append(events, strings.ToLower(key[2:]))
			continue
		case !validAttrName(key):
			hw.fail("invalid attribute name %q on <%s>", key, n.Tag)
			return
		}

		if on, ok := value.(bool); ok && isBooleanAttr(key) {
			if on {
				hw.str(" " + key)
			}
			continue
		}
		s := attrString(value)
		if s == "" && (value == nil || key == "class" || key == "style") {
			continue
		}
		hw.str(" " + key + `="` + escapeAttr(s) + `"`)
	}

	for _, name := range events {
		hw.str(" data-on-" + name + `="true"`)
	}
}

func (r *Renderer) indent(hw *htmlWriter, depth int) {
	hw.str(strings.Repeat(r.config.Indent, depth))
}

// isHandlerProp reports whether the prop key/value pair is an event handler
// rather than an attribute.
func isHandlerProp(key string, value any) bool {
	if !strings.HasPrefix(key, "on") || value == nil {
		return false
	}
	if _, ok := value.(vdom.EventHandler); ok {
		return true
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}

func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
