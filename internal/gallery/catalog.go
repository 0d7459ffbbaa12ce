package gallery

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/donutdao/donut-ui/internal/errors"
	"github.com/donutdao/donut-ui/pkg/icon"
	"github.com/donutdao/donut-ui/pkg/kit"
	"github.com/donutdao/donut-ui/pkg/vdom"
)

// Component is one gallery entry.
type Component struct {
	Name  string
	Title string

	// Render draws a single instance configured from query parameters.
	Render func(q url.Values) (*vdom.VNode, error)

	// Showcase draws every variant for the index page.
	Showcase func() []*vdom.VNode
}

var catalog = []Component{
	{Name: "button", Title: "Button", Render: renderButton, Showcase: showcaseButton},
	{Name: "card", Title: "Card", Render: renderCard, Showcase: showcaseCard},
	{Name: "input", Title: "Input", Render: renderInput, Showcase: showcaseInput},
	{Name: "search-input", Title: "Search input", Render: renderSearchInput, Showcase: showcaseSearchInput},
}

// Components returns the catalog in display order.
func Components() []Component {
	return append([]Component(nil), catalog...)
}

// Lookup finds a component by name.
func Lookup(name string) (Component, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}

func names() string {
	out := make([]string, len(catalog))
	for i, c := range catalog {
		out[i] = c.Name
	}
	return strings.Join(out, ", ")
}

func optionError(param string, err error, valid string) *errors.DonutError {
	return errors.New("E181").
		WithDetailf("%s: %v", param, err).
		WithSuggestion("Valid values: " + valid)
}

func boolParam(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, optionError(name, err, "true, false")
	}
	return b, nil
}

func stringParam(q url.Values, name, fallback string) string {
	if v := q.Get(name); v != "" {
		return v
	}
	return fallback
}

func joinValues[T ~string](vs []T) string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}

func renderButton(q url.Values) (*vdom.VNode, error) {
	variant, err := kit.ParseButtonVariant(q.Get("variant"))
	if err != nil {
		return nil, optionError("variant", err, joinValues(kit.ButtonVariants))
	}
	full, err := boolParam(q, "fullWidth")
	if err != nil {
		return nil, err
	}
	disabled, err := boolParam(q, "disabled")
	if err != nil {
		return nil, err
	}
	return kit.Button(
		kit.WithVariant(variant),
		kit.FullWidth(full),
		kit.Disabled(disabled),
		kit.ButtonChildren(stringParam(q, "label", "Button")),
	), nil
}

func showcaseButton() []*vdom.VNode {
	var out []*vdom.VNode
	for _, v := range kit.ButtonVariants {
		out = append(out,
			kit.Button(kit.WithVariant(v), kit.ButtonChildren(string(v))),
			kit.Button(kit.WithVariant(v), kit.Disabled(true), kit.ButtonChildren(string(v)+" disabled")),
		)
	}
	out = append(out, kit.Button(kit.Cyber(), kit.FullWidth(true), kit.ButtonChildren("full width")))
	return out
}

func renderCard(q url.Values) (*vdom.VNode, error) {
	size, err := kit.ParseSize(q.Get("size"))
	if err != nil {
		return nil, optionError("size", err, joinValues(kit.Sizes))
	}
	noPadding, err := boolParam(q, "noPadding")
	if err != nil {
		return nil, err
	}
	return kit.Card(
		kit.CardTitle(stringParam(q, "title", "Card")),
		kit.CardIcon(icon.Sparkles(16)),
		kit.CardSize(size),
		kit.NoPadding(noPadding),
		kit.CardChildren(vdom.P(vdom.Class("text-sm text-corp-400"), stringParam(q, "body", "Card content"))),
	), nil
}

func showcaseCard() []*vdom.VNode {
	var out []*vdom.VNode
	for _, s := range kit.Sizes {
		out = append(out, kit.Card(
			kit.CardTitle(fmt.Sprintf("Size %s", s)),
			kit.CardIcon(icon.Sparkles(16)),
			kit.CardSize(s),
			kit.CardChildren(vdom.P(vdom.Class("text-sm text-corp-400"), "Card content")),
		))
	}
	out = append(out,
		kit.Card(
			kit.CardTitle("Stats"),
			kit.CardRightHeader(kit.Button(kit.Ghost(), kit.ButtonChildren("View"))),
			kit.CardChildren(vdom.P(vdom.Class("text-2xl font-semibold text-corp-50"), "1,204")),
		),
		kit.Card(kit.NoPadding(true), kit.CardChildren(vdom.Div(vdom.Class("h-16 bg-donut-500/10")))),
	)
	return out
}

func renderInput(q url.Values) (*vdom.VNode, error) {
	return kit.Input(kit.InputAttrs(
		vdom.Type(stringParam(q, "type", "text")),
		vdom.Placeholder(stringParam(q, "placeholder", "Type here")),
	)), nil
}

func showcaseInput() []*vdom.VNode {
	return []*vdom.VNode{
		kit.Input(kit.InputAttrs(vdom.Placeholder("Type here"))),
		kit.Input(kit.InputAttrs(vdom.Type("email"), vdom.Placeholder("name@example.com"))),
		kit.Input(kit.InputAttrs(vdom.Placeholder("Disabled"), vdom.Disabled())),
	}
}

func renderSearchInput(q url.Values) (*vdom.VNode, error) {
	return kit.SearchInput(kit.InputAttrs(vdom.Placeholder(stringParam(q, "placeholder", "Search")))), nil
}

func showcaseSearchInput() []*vdom.VNode {
	return []*vdom.VNode{kit.SearchInput(kit.InputAttrs(vdom.Placeholder("Search")))}
}
