package render

import "strings"

func tagSet(names string) map[string]bool {
	set := make(map[string]bool)
	for _, n := range strings.Fields(names) {
		set[n] = true
	}
	return set
}

var (
	// Void elements never have children or a closing tag.
	voidElements = tagSet("area base br col embed hr img input link meta param source track wbr")

	// Inline elements stay on one line in pretty-printed output.
	inlineElements = tagSet(`a abbr b bdi bdo br cite code data dfn em i kbd mark q
		rb rp rt rtc ruby s samp small span strong sub sup svg path time u var wbr`)

	// Boolean attributes render as a bare name when true and are omitted
	// when false.
	booleanAttrs = tagSet(`allowfullscreen async autofocus autoplay checked controls
		default defer disabled formnovalidate hidden ismap itemscope loop multiple muted
		nomodule novalidate open playsinline readonly required reversed selected`)
)

func isVoidElement(tag string) bool   { return voidElements[tag] }
func isInlineElement(tag string) bool { return inlineElements[tag] }
func isBooleanAttr(name string) bool  { return booleanAttrs[name] }

// validTagName reports whether tag is safe to emit as an element name.
// Letters, digits and hyphens only, starting with a letter.
func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for i, c := range tag {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-'):
		default:
			return false
		}
	}
	return true
}

// validAttrName reports whether name is safe to emit as an attribute name.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch c {
		case ' ', '\t', '\n', '\f', '\r', '"', '\'', '>', '/', '=', '<':
			return false
		}
	}
	return true
}
