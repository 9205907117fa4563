// Package render writes VNode trees as HTML.
//
// Attributes are emitted in sorted order so output is deterministic. Text
// and attribute values are escaped; raw nodes are written verbatim.
// Component nodes are expanded by calling Render.
//
//	html, err := render.RenderToString(node)
package render
