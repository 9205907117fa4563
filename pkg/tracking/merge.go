package tracking

import (
	"sort"
	"strings"

	"github.com/vango-dev/trackable/internal/errors"
)

// ErrConfigurationMissing is returned when attributes are requested without
// a NamingConfig. Match it with errors.Is.
var ErrConfigurationMissing error = errors.New(errors.CodeConfigurationMissing)

// PropertyBag holds one namespace's tracking properties. Values are passed
// through untouched.
type PropertyBag map[string]any

// AttributeMap is the merged output, keyed by final attribute name.
type AttributeMap map[string]any

// NamespaceProps pairs a namespace with its property bag.
type NamespaceProps struct {
	ID    Namespace
	Props PropertyBag
}

// In returns the property bag of an arbitrary namespace.
func In(ns Namespace, props PropertyBag) NamespaceProps {
	return NamespaceProps{ID: ns, Props: props}
}

// GA returns props for the Google Analytics namespace.
func GA(props PropertyBag) NamespaceProps { return In(NamespaceGA, props) }

// UA returns props for the Universal Analytics namespace.
func UA(props PropertyBag) NamespaceProps { return In(NamespaceUA, props) }

// AttrPrefix is the fixed prefix of every generated attribute.
const AttrPrefix = "data-"

// NormalizePrefix makes a non-empty prefix end in exactly one trailing "-"
// boundary. An empty prefix stays empty.
func NormalizePrefix(prefix string) string {
	if prefix == "" || strings.HasSuffix(prefix, "-") {
		return prefix
	}
	return prefix + "-"
}

// AttributeName returns the final attribute name of one property.
func AttributeName(cfg *NamingConfig, ns Namespace, name string) string {
	return AttrPrefix + NormalizePrefix(cfg.Prefix(ns)) + cfg.Convert(name)
}

// Merge flattens the namespaces into one attribute map. Namespaces are
// applied in order, so on a name collision the later namespace wins.
// Inside one bag names are applied in sorted order.
func Merge(cfg *NamingConfig, namespaces ...NamespaceProps) (AttributeMap, error) {
	if cfg == nil {
		return nil, errors.New(errors.CodeConfigurationMissing).
			WithSuggestion("Pass tracking.Default() or a config built with tracking.Provide()")
	}

	size := 0
	for _, ns := range namespaces {
		size += len(ns.Props)
	}
	attrs := make(AttributeMap, size)

	for _, ns := range namespaces {
		prefix := AttrPrefix + NormalizePrefix(cfg.Prefix(ns.ID))
		for _, name := range sortedNames(ns.Props) {
			attrs[prefix+cfg.Convert(name)] = ns.Props[name]
		}
	}
	return attrs, nil
}

func sortedNames(bag PropertyBag) []string {
	names := make([]string, 0, len(bag))
	for name := range bag {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
