package tracking

import "context"

type contextKey int

const configKey contextKey = 1

// WithConfig returns a child context carrying cfg. Lookups below it see cfg
// until another WithConfig shadows it.
func WithConfig(ctx context.Context, cfg *NamingConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// Lookup returns the nearest config installed with WithConfig.
func Lookup(ctx context.Context) (*NamingConfig, bool) {
	if ctx == nil {
		return nil, false
	}
	cfg, ok := ctx.Value(configKey).(*NamingConfig)
	if !ok || cfg == nil {
		return nil, false
	}
	return cfg, true
}

// FromContext returns the nearest installed config, or Default.
func FromContext(ctx context.Context) *NamingConfig {
	if cfg, ok := Lookup(ctx); ok {
		return cfg
	}
	return Default()
}
