package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/vango-dev/trackable/internal/errors"
	"github.com/vango-dev/trackable/pkg/tracking"
	"github.com/vango-dev/trackable/pkg/vdom"
)

// request is the JSON input of render and attrs.
//
//	{
//	  "namespaces": [{"id": "ga", "props": {"eventName": "signup"}}],
//	  "children": "<button>Sign up</button>",
//	  "replacement": {"tag": "span"}
//	}
type request struct {
	Namespaces  []namespaceRequest  `json:"namespaces"`
	Children    string              `json:"children"`
	Replacement *replacementRequest `json:"replacement,omitempty"`
}

type namespaceRequest struct {
	ID    string         `json:"id"`
	Props map[string]any `json:"props"`
}

// replacementRequest sets at most one of Tag and Element. Element is HTML
// that must parse to a single element.
type replacementRequest struct {
	Tag     string `json:"tag,omitempty"`
	Element string `json:"element,omitempty"`
}

// readRequest decodes a request from the file at path, or from stdin when
// path is empty or "-".
func readRequest(path string, stdin io.Reader) (*request, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.New(errors.CodeInvalidRequest).Wrap(err)
		}
		defer f.Close()
		r = f
	}
	return decodeRequest(r)
}

func decodeRequest(r io.Reader) (*request, error) {
	var req request
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	// Numbers stay literal so 1000000 does not render as 1e+06.
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return nil, errors.New(errors.CodeInvalidRequest).Wrap(err)
	}
	for _, ns := range req.Namespaces {
		if ns.ID == "" {
			return nil, errors.New(errors.CodeInvalidRequest).
				WithDetail("every namespace needs an id")
		}
	}
	if rr := req.Replacement; rr != nil && rr.Tag != "" && rr.Element != "" {
		return nil, errors.New(errors.CodeInvalidRequest).
			WithDetail("replacement takes either tag or element, not both")
	}
	return &req, nil
}

// namespaces returns the property bags in request order.
func (req *request) namespaces() []tracking.NamespaceProps {
	out := make([]tracking.NamespaceProps, 0, len(req.Namespaces))
	for _, ns := range req.Namespaces {
		out = append(out, tracking.In(tracking.Namespace(ns.ID), ns.Props))
	}
	return out
}

// props converts the request into Trackable props, parsing the HTML parts.
func (req *request) props() (tracking.Props, error) {
	children, err := vdom.ParseFragmentString(strings.TrimSpace(req.Children))
	if err != nil {
		return tracking.Props{}, errors.New(errors.CodeInvalidRequest).Wrap(err)
	}
	replacement, err := req.replacement()
	if err != nil {
		return tracking.Props{}, err
	}
	return tracking.Props{
		Namespaces:  req.namespaces(),
		Replacement: replacement,
		Children:    children,
	}, nil
}

func (req *request) replacement() (tracking.Replacement, error) {
	rr := req.Replacement
	switch {
	case rr == nil:
		return tracking.NoReplacement(), nil
	case rr.Tag != "":
		return tracking.ReplaceWithTag(rr.Tag), nil
	case rr.Element != "":
		nodes, err := vdom.ParseFragmentString(strings.TrimSpace(rr.Element))
		if err != nil {
			return tracking.Replacement{}, errors.New(errors.CodeInvalidRequest).Wrap(err)
		}
		if len(nodes) == 1 {
			return tracking.ReplaceWithElement(nodes[0]), nil
		}
		// Anything but a single node is not an element; it renders nothing.
		return tracking.ReplaceWithElement(vdom.Fragment(nodes)), nil
	default:
		return tracking.NoReplacement(), nil
	}
}
