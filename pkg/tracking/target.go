package tracking

import (
	"github.com/vango-dev/trackable/pkg/vdom"
)

// ReplaceKind discriminates Replacement values.
type ReplaceKind uint8

const (
	ReplaceNone    ReplaceKind = iota // annotate the first element child
	ReplaceTag                        // build a new element of a tag
	ReplaceElement                    // clone a given element
)

// String returns the string representation of the ReplaceKind.
func (k ReplaceKind) String() string {
	switch k {
	case ReplaceNone:
		return "none"
	case ReplaceTag:
		return "tag"
	case ReplaceElement:
		return "element"
	default:
		return "unknown"
	}
}

// Replacement selects the element that receives the attributes.
// The zero value is NoReplacement.
type Replacement struct {
	kind ReplaceKind
	tag  string
	node *vdom.VNode
}

// NoReplacement annotates the first element among the children.
func NoReplacement() Replacement { return Replacement{} }

// ReplaceWithTag wraps all children in a new element of the given tag.
// An empty tag means no replacement.
func ReplaceWithTag(tag string) Replacement {
	if tag == "" {
		return Replacement{}
	}
	return Replacement{kind: ReplaceTag, tag: tag}
}

// ReplaceWithElement renders node, annotated, instead of the children.
// A node that is not element-typed renders nothing.
func ReplaceWithElement(node *vdom.VNode) Replacement {
	return Replacement{kind: ReplaceElement, node: node}
}

// Kind returns the variant.
func (r Replacement) Kind() ReplaceKind { return r.kind }

// Tag returns the tag of a ReplaceTag replacement.
func (r Replacement) Tag() string { return r.tag }

// Node returns the element of a ReplaceElement replacement.
func (r Replacement) Node() *vdom.VNode { return r.node }

// Valid reports whether resolving r can render anything.
func (r Replacement) Valid() bool {
	switch r.kind {
	case ReplaceNone, ReplaceTag:
		return true
	case ReplaceElement:
		return r.node.IsElement()
	default:
		return false
	}
}

// ResolveTarget places attrs on exactly one element and returns what is
// rendered. A nil result renders nothing.
//
// Without a replacement the first element child (fragments are flattened)
// gets attrs on top of its own props. Non-element nodes before it are
// dropped; nodes after it are kept as they are. The children themselves are
// never mutated.
func ResolveTarget(children []*vdom.VNode, r Replacement, attrs AttributeMap) *vdom.VNode {
	switch r.kind {
	case ReplaceTag:
		return vdom.CreateElement(r.tag, vdom.Props(attrs), children...)

	case ReplaceElement:
		if !r.node.IsElement() {
			return nil
		}
		return vdom.WithProps(r.node, vdom.Props(attrs))

	case ReplaceNone:
		nodes := vdom.Flatten(children)
		out := make([]*vdom.VNode, 0, len(nodes))
		for i, child := range nodes {
			if !child.IsElement() {
				continue
			}
			out = append(out, vdom.WithProps(child, vdom.Props(attrs)))
			out = append(out, nodes[i+1:]...)
			break
		}
		return vdom.Fragment(out)

	default:
		return nil
	}
}
