package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestVNodeIsElement(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, false},
		{"text node", Text("hello"), false},
		{"raw node", Raw("<b>x</b>"), false},
		{"fragment", Fragment(Div()), false},
		{"element", Div(), true},
		{"component", &VNode{Kind: KindComponent, Comp: Func(func() *VNode { return Div() })}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.IsElement())
		})
	}
}

func TestPropsClone(t *testing.T) {
	orig := Props{"class": "a"}
	clone := orig.Clone()
	clone["class"] = "b"

	assert.Equal(t, "a", orig["class"])
	assert.Empty(t, Props(nil).Clone())
}

func TestAttrIsEmpty(t *testing.T) {
	assert.True(t, Attr{}.IsEmpty())
	assert.False(t, ID("x").IsEmpty())
}

func TestFunc(t *testing.T) {
	c := Func(func() *VNode { return Span(Text("hi")) })
	node := c.Render()

	assert.Equal(t, "span", node.Tag)
	assert.Len(t, node.Children, 1)
}
