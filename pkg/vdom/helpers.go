package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// Flatten expands fragments in place, returning the nodes in document order.
// Nil entries are dropped.
func Flatten(nodes []*VNode) []*VNode {
	out := make([]*VNode, 0, len(nodes))
	for _, n := range nodes {
		switch {
		case n == nil:
			continue
		case n.Kind == KindFragment:
			out = append(out, Flatten(n.Children)...)
		default:
			out = append(out, n)
		}
	}
	return out
}

// WithProps returns a copy of an element whose props are the original props
// overlaid with extra. Keys in extra win. Children are shared with the
// original, which is left untouched.
//
// A component node is wrapped so that extra lands on the root element it
// renders. Any other kind of node is returned unchanged.
func WithProps(node *VNode, extra Props) *VNode {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case KindElement:
		clone := *node
		clone.Props = node.Props.Clone()
		for k, v := range extra {
			clone.Props[k] = v
		}
		if key, ok := extra["key"].(string); ok {
			clone.Key = key
		}
		return &clone
	case KindComponent:
		clone := *node
		clone.Comp = &propsComponent{inner: node.Comp, extra: extra.Clone()}
		return &clone
	default:
		return node
	}
}

// propsComponent applies extra props to whatever its inner component renders.
type propsComponent struct {
	inner Component
	extra Props
}

// Render implements Component.
func (p *propsComponent) Render() *VNode {
	if p.inner == nil {
		return nil
	}
	return WithProps(p.inner.Render(), p.extra)
}
