package vdom

import (
	"strconv"
	"strings"
)

func attr(key string, value any) Attr { return Attr{Key: key, Value: value} }

// CustomAttr sets an attribute that has no dedicated helper.
func CustomAttr(key string, value any) Attr { return attr(key, value) }

func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute to the given classes joined by spaces.
// Use CN to build a class string from optional fragments.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Data sets a data-* attribute: Data("component", "button") renders
// data-component="button".
func Data(key, value string) Attr { return attr("data-"+key, value) }

func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }
func AriaLabel(label string) Attr { return attr("aria-label", label) }
func TabIndex(index int) Attr     { return attr("tabindex", index) }

func Href(url string) Attr { return attr("href", url) }
func Src(url string) Attr  { return attr("src", url) }

func Name(name string) Attr        { return attr("name", name) }
func Value(value string) Attr      { return attr("value", value) }
func Type(t string) Attr           { return attr("type", t) }
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled marks a form control disabled. It renders as a bare boolean
// attribute.
func Disabled() Attr { return attr("disabled", true) }

// SVG presentation attributes. Width and Height take pixels.

func Width(px int) Attr            { return attr("width", strconv.Itoa(px)) }
func Height(px int) Attr           { return attr("height", strconv.Itoa(px)) }
func ViewBox(box string) Attr      { return attr("viewBox", box) }
func Fill(paint string) Attr       { return attr("fill", paint) }
func Stroke(paint string) Attr     { return attr("stroke", paint) }
func StrokeWidth(w string) Attr    { return attr("stroke-width", w) }
func StrokeLinecap(c string) Attr  { return attr("stroke-linecap", c) }
func StrokeLinejoin(j string) Attr { return attr("stroke-linejoin", j) }

// ClassIf sets class when condition holds and is skipped otherwise.
func ClassIf(condition bool, class string) Attr {
	return AttrIf(condition, attr("class", class))
}

// AttrIf returns a when condition holds and an empty Attr, which element
// factories skip, otherwise.
func AttrIf(condition bool, a Attr) Attr {
	if !condition {
		return Attr{}
	}
	return a
}

// Classes is Class over a mix of string and []string values, built with CN.
func Classes(classes ...any) Attr {
	var parts []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			parts = append(parts, v)
		case []string:
			parts = append(parts, v...)
		}
	}
	return attr("class", CN(parts...))
}

// CN composes a class string from fragments in order. Empty fragments are
// dropped and the whitespace inside each fragment is collapsed, so the
// result never has leading, trailing or doubled spaces.
func CN(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
