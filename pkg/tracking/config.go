package tracking

import (
	"sort"
)

// Namespace identifies a source of tracking properties.
type Namespace string

// Known namespaces. Any other Namespace value works the same way.
const (
	NamespaceGA Namespace = "ga" // Google Analytics
	NamespaceUA Namespace = "ua" // Universal Analytics
)

// Converter maps a property name to its attribute-name fragment.
// It must be pure.
type Converter func(string) string

// NamingConfig is an immutable tracking configuration: one converter shared
// by every namespace and an optional prefix per namespace. The zero value
// behaves like Default.
type NamingConfig struct {
	converter Converter
	prefixes  map[Namespace]string
}

// Option configures a NamingConfig built by Provide.
type Option func(*NamingConfig)

// WithConverter sets the property-name converter. A nil converter keeps
// the default.
func WithConverter(c Converter) Option {
	return func(cfg *NamingConfig) {
		if c != nil {
			cfg.converter = c
		}
	}
}

// WithPrefix sets the attribute prefix of one namespace.
func WithPrefix(ns Namespace, prefix string) Option {
	return func(cfg *NamingConfig) {
		cfg.prefixes[ns] = prefix
	}
}

// WithPrefixes sets the prefixes of several namespaces at once.
func WithPrefixes(prefixes map[Namespace]string) Option {
	return func(cfg *NamingConfig) {
		for ns, p := range prefixes {
			cfg.prefixes[ns] = p
		}
	}
}

var defaultConfig = Provide()

// Default returns the configuration used when no scope was installed:
// Kebabize and no prefixes.
func Default() *NamingConfig {
	return defaultConfig
}

// Provide builds a new config scope. Fields not set by an option take the
// defaults; nothing is inherited from any other scope.
func Provide(opts ...Option) *NamingConfig {
	cfg := &NamingConfig{
		converter: Kebabize,
		prefixes:  make(map[Namespace]string),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Convert applies the configured converter to a property name. The zero
// NamingConfig converts with Kebabize, like Default.
func (c *NamingConfig) Convert(name string) string {
	if c.converter == nil {
		return Kebabize(name)
	}
	return c.converter(name)
}

// Prefix returns the raw prefix configured for ns, or "".
func (c *NamingConfig) Prefix(ns Namespace) string {
	return c.prefixes[ns]
}

// Prefixes returns a copy of the configured prefixes.
func (c *NamingConfig) Prefixes() map[Namespace]string {
	out := make(map[Namespace]string, len(c.prefixes))
	for ns, p := range c.prefixes {
		out[ns] = p
	}
	return out
}

// Namespaces returns the namespaces that have a prefix, sorted.
func (c *NamingConfig) Namespaces() []Namespace {
	out := make([]Namespace, 0, len(c.prefixes))
	for ns := range c.prefixes {
		out = append(out, ns)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
