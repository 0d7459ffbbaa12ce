// Package vdom provides the virtual element tree that donut-ui components emit.
//
// A VNode is an in-memory description of markup: elements, text, fragments,
// nested components and trusted raw HTML. Components never write HTML
// directly; they return a VNode tree and the render package serializes it.
//
// # Core Types
//
// VNode is the fundamental building block. Props holds attributes and event
// handlers. Attr and EventHandler are the values that populate Props, and
// Ref is a caller-owned handle that receives the node it is attached to.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Arguments are applied in order, so a later attribute with the same key
// replaces an earlier one. Components rely on this to let caller-supplied
// pass-through attributes override their defaults.
//
// # Class Composition
//
// CN joins class fragments in order, dropping empty ones, so optional
// fragments can be passed unconditionally.
package vdom
