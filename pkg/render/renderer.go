package render

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/trackable/pkg/vdom"
)

// RenderToString renders a VNode tree to an HTML string. A nil node renders
// as the empty string.
func RenderToString(node *vdom.VNode) (string, error) {
	var b strings.Builder
	if err := RenderToWriter(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func RenderToWriter(w io.Writer, node *vdom.VNode) error {
	ew := &errWriter{w: w}
	if err := renderNode(ew, node); err != nil {
		return err
	}
	return ew.err
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

// renderNode dispatches rendering based on node kind.
func renderNode(w *errWriter, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return renderElement(w, node)
	case vdom.KindText:
		w.WriteString(escapeHTML(node.Text))
	case vdom.KindRaw:
		w.WriteString(node.Text)
	case vdom.KindFragment:
		return renderChildren(w, node.Children)
	case vdom.KindComponent:
		if node.Comp != nil {
			return renderNode(w, node.Comp.Render())
		}
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
	return nil
}

func renderChildren(w *errWriter, children []*vdom.VNode) error {
	for _, child := range children {
		if err := renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// renderElement renders an HTML element with its attributes and children.
func renderElement(w *errWriter, node *vdom.VNode) error {
	if node.Tag == "" {
		return fmt.Errorf("element without tag")
	}
	w.WriteString("<" + node.Tag)
	renderAttributes(w, node.Props)
	w.WriteString(">")

	if vdom.IsVoidElement(node.Tag) {
		return nil
	}
	if err := renderChildren(w, node.Children); err != nil {
		return err
	}
	w.WriteString("</" + node.Tag + ">")
	return nil
}

// renderAttributes renders props in sorted key order. Nil values, false
// booleans, functions and the reconciliation key are skipped; true booleans
// render as bare attributes.
func renderAttributes(w *errWriter, props vdom.Props) {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == "key" {
			continue
		}
		value := props[key]
		if value == nil || isFunc(value) {
			continue
		}
		if b, ok := value.(bool); ok && strings.HasPrefix(key, "data-") {
			// data-* attributes keep their boolean value as text.
			w.WriteString(" " + key + `="` + strconv.FormatBool(b) + `"`)
			continue
		}
		if b, ok := value.(bool); ok {
			if b {
				w.WriteString(" " + key)
			}
			continue
		}
		w.WriteString(" " + key + `="` + escapeAttr(attrToString(value)) + `"`)
	}
}

func isFunc(value any) bool {
	return reflect.TypeOf(value).Kind() == reflect.Func
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
