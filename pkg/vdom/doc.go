// Package vdom provides the virtual DOM used by trackable.
//
// A VNode is an in-memory element, text, fragment, component or raw HTML
// node. The tracking engine only needs four things from it: child
// enumeration in document order, the element/content distinction
// (IsElement), element construction (CreateElement and the tag factories)
// and cloning with overriding props (WithProps).
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    Span(Text("Title")),
//	    "plain text child",
//	)
//
// # Parsing
//
// ParseFragment turns an HTML fragment into VNodes so that markup coming
// from files or stdin can be annotated like hand-built trees.
package vdom
