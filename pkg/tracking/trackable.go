package tracking

import (
	"maps"

	"github.com/vango-dev/trackable/pkg/vdom"
)

// Props are the inputs of a Trackable.
type Props struct {
	// Namespaces are merged in order; later entries win on collisions.
	Namespaces []NamespaceProps

	// Replacement overrides which element receives the attributes.
	Replacement Replacement

	// Children are the wrapped nodes.
	Children []*vdom.VNode
}

// Trackable annotates its target element with the merged tracking
// attributes of its namespaces.
type Trackable struct {
	cfg   *NamingConfig
	props Props

	attrs AttributeMap
	err   error
	done  bool
}

// New creates a Trackable bound to cfg. A nil cfg is reported by Build.
func New(cfg *NamingConfig, props Props) *Trackable {
	return &Trackable{cfg: cfg, props: props}
}

// Attributes returns a copy of the merged attribute map. The merge runs
// once per Trackable.
func (t *Trackable) Attributes() (AttributeMap, error) {
	attrs, err := t.merged()
	if err != nil {
		return nil, err
	}
	return maps.Clone(attrs), nil
}

func (t *Trackable) merged() (AttributeMap, error) {
	if !t.done {
		t.attrs, t.err = Merge(t.cfg, t.props.Namespaces...)
		t.done = true
	}
	return t.attrs, t.err
}

// Build merges the attributes and resolves the target. A nil node with a
// nil error means nothing is rendered.
func (t *Trackable) Build() (*vdom.VNode, error) {
	attrs, err := t.merged()
	if err != nil {
		return nil, err
	}
	return ResolveTarget(t.props.Children, t.props.Replacement, attrs), nil
}

// Render implements vdom.Component. It panics when no NamingConfig was
// given; use Build to handle that case as an error.
func (t *Trackable) Render() *vdom.VNode {
	node, err := t.Build()
	if err != nil {
		panic(err)
	}
	return node
}

// Node wraps the Trackable in a component node so it can be nested in a
// tree built with the vdom factories.
func (t *Trackable) Node() *vdom.VNode {
	return &vdom.VNode{Kind: vdom.KindComponent, Comp: t}
}
