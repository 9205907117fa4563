package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/vango-dev/trackable/internal/errors"
	"github.com/vango-dev/trackable/pkg/tracking"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "trackable.json"

	// EnvPrefix prefixes every environment variable read.
	EnvPrefix = "TRACKABLE_"

	// DefaultConverter is the converter used when none is configured.
	DefaultConverter = "kebab"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log format.
	DefaultLogFormat = "text"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "trackable"
)

// converters maps configuration names to property-name converters.
var converters = map[string]tracking.Converter{
	"kebab":    tracking.Kebabize,
	"identity": tracking.Identity,
	"lower":    tracking.Lower,
}

// Config is the complete trackable configuration.
type Config struct {
	// Converter names the property-name converter: kebab, identity or lower.
	Converter string `koanf:"converter"`

	// Prefixes maps namespace ids to attribute prefixes.
	Prefixes map[string]string `koanf:"prefixes"`

	// Log configures logging.
	Log LogConfig `koanf:"log"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `koanf:"metrics"`

	// path is the file the config was loaded from, if any.
	path string
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is text or json.
	Format string `koanf:"format"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Namespace is the Prometheus metric namespace.
	Namespace string `koanf:"namespace"`
}

// Options control where configuration is read from.
type Options struct {
	// File is an explicit configuration file. It must exist.
	File string

	// Dir is searched for ConfigFileName when File is empty. A missing
	// file there is not an error.
	Dir string

	// Environ overrides os.Environ for tests. Entries are KEY=VALUE.
	Environ []string
}

// defaults returns the built-in configuration as a flat koanf map.
func defaults() map[string]any {
	return map[string]any{
		"converter":         DefaultConverter,
		"log.level":         DefaultLogLevel,
		"log.format":        DefaultLogFormat,
		"metrics.namespace": DefaultMetricsNamespace,
	}
}

// New returns a Config holding only the defaults.
func New() *Config {
	return &Config{
		Converter: DefaultConverter,
		Prefixes:  map[string]string{},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultMetricsNamespace,
		},
	}
}

// Load reads defaults, the configuration file and the environment, then
// validates the result.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, errors.New(errors.CodeConfigParse).
				WithDetail("Failed to parse " + path).
				WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON").
				Wrap(err)
		}
	}

	if err := loadEnv(k, opts.Environ); err != nil {
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}

	cfg := New()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}
	cfg.path = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePath returns the file to read, or "" when there is none.
func resolvePath(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			if os.IsNotExist(err) {
				return "", errors.New(errors.CodeConfigNotFound).
					WithDetail("No configuration file at " + opts.File)
			}
			return "", errors.New(errors.CodeConfigParse).Wrap(err)
		}
		return opts.File, nil
	}
	if opts.Dir == "" {
		return "", nil
	}
	path := filepath.Join(opts.Dir, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// loadEnv loads TRACKABLE_* variables. TRACKABLE_LOG__LEVEL becomes
// log.level.
func loadEnv(k *koanf.Koanf, environ []string) error {
	transform := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}
	if environ == nil {
		return k.Load(env.Provider(EnvPrefix, ".", transform), nil)
	}

	values := make(map[string]any)
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		values[transform(key)] = val
	}
	return k.Load(confmap.Provider(values, "."), nil)
}

// applyDefaults fills in values left empty by the sources.
func (c *Config) applyDefaults() {
	if c.Converter == "" {
		c.Converter = DefaultConverter
	}
	if c.Prefixes == nil {
		c.Prefixes = map[string]string{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := converters[c.Converter]; !ok {
		return errors.New(errors.CodeUnknownConverter).
			WithSuggestion(`Set "converter" to kebab, identity or lower (got "` + c.Converter + `")`)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("log.level must be debug, info, warn or error, got " + c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("log.format must be text or json, got " + c.Log.Format)
	}
	for ns := range c.Prefixes {
		if ns == "" {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail("prefixes must not contain an empty namespace id")
		}
	}
	return nil
}

// SetPrefix sets the prefix of one namespace, as the CLI --prefix flag does.
func (c *Config) SetPrefix(ns, prefix string) {
	if c.Prefixes == nil {
		c.Prefixes = map[string]string{}
	}
	c.Prefixes[ns] = prefix
}

// NamingConfig builds the tracking scope described by the configuration.
func (c *Config) NamingConfig() (*tracking.NamingConfig, error) {
	conv, ok := converters[c.Converter]
	if !ok {
		return nil, errors.New(errors.CodeUnknownConverter)
	}
	prefixes := make(map[tracking.Namespace]string, len(c.Prefixes))
	for ns, p := range c.Prefixes {
		prefixes[tracking.Namespace(ns)] = p
	}
	return tracking.Provide(
		tracking.WithConverter(conv),
		tracking.WithPrefixes(prefixes),
	), nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}
