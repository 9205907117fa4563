package vdom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses an HTML fragment in a <body> context and converts it
// to VNodes in document order. Attribute values become string props.
// Comments and doctypes are discarded.
func ParseFragment(r io.Reader) ([]*VNode, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, err
	}
	out := make([]*VNode, 0, len(nodes))
	for _, n := range nodes {
		if v := fromHTML(n); v != nil {
			out = append(out, v)
		}
	}
	return out, nil
}

// ParseFragmentString is ParseFragment over a string.
func ParseFragmentString(s string) ([]*VNode, error) {
	return ParseFragment(strings.NewReader(s))
}

func fromHTML(n *html.Node) *VNode {
	switch n.Type {
	case html.TextNode:
		return Text(n.Data)
	case html.ElementNode:
		props := make(Props, len(n.Attr))
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			props[name] = a.Val
		}
		var children []*VNode
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if v := fromHTML(c); v != nil {
				children = append(children, v)
			}
		}
		return CreateElement(n.Data, props, children...)
	default:
		return nil
	}
}
