// Package kit contains the donut-ui presentational components.
//
// Every component is a stateless render function configured by functional
// options. It returns a *vdom.VNode ready for the render package:
//
//	kit.Button(kit.Ghost(), kit.ButtonChildren("Save"))
//	kit.Card(kit.CardTitle("Stats"), kit.CardChildren(vdom.Div()))
//	kit.SearchInput(kit.InputAttrs(vdom.Placeholder("Search...")))
//
// Options are applied in order and the last one wins. Pass-through
// attributes and event handlers are forwarded onto the underlying element.
// A pass-through class is appended to the composed class list instead of
// replacing it.
//
// Styling is expressed as Tailwind utility classes that reference the
// tokens defined by the theme package.
package kit
