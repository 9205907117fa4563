// Package tracking annotates one element with tracking attributes collected
// from several namespaces.
//
// A NamingConfig holds the property-name converter and one attribute prefix
// per namespace. Merge turns namespace property bags into a flat attribute
// map named data-{prefix}{converted-name}; when two namespaces produce the
// same name the later one wins. ResolveTarget then picks the single element
// that receives the map: the first element child, a freshly built element of
// a replacement tag, or a clone of a replacement element.
//
//	cfg := tracking.Provide(tracking.WithPrefix(tracking.NamespaceGA, "ga"))
//
//	node, err := tracking.New(cfg, tracking.Props{
//	    Namespaces: []tracking.NamespaceProps{
//	        tracking.GA(tracking.PropertyBag{"eventName": "signup"}),
//	    },
//	    Children: []*vdom.VNode{vdom.Button("Sign up")},
//	}).Build()
//	// <button data-ga-event-name="signup">Sign up</button>
//
// There is no implicit global scope: every call takes its config explicitly.
// WithConfig and FromContext carry a config through a context.Context for
// callers that already thread one down their tree.
package tracking
