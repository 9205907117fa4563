package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/trackable/internal/config"
	"github.com/vango-dev/trackable/internal/errors"
	"github.com/vango-dev/trackable/pkg/telemetry"
	"github.com/vango-dev/trackable/pkg/tracking"
)

// app is the state shared by subcommands, built once the flags are parsed.
type app struct {
	cfg      *config.Config
	naming   *tracking.NamingConfig
	engine   *tracking.Engine
	registry *prometheus.Registry
	logger   *slog.Logger
}

type rootFlags struct {
	configFile  string
	prefixes    []string
	logLevel    string
	dumpMetrics bool
}

func rootCmd() *cobra.Command {
	var (
		flags rootFlags
		state app
	)

	cmd := &cobra.Command{
		Use:   "trackable",
		Short: "Annotate HTML with tracking data attributes",
		Long: `trackable merges analytics properties from several namespaces into
data-* attributes and places them on exactly one element.

Attribute names are data-{prefix}{converted-name}. Prefixes come from
trackable.json, TRACKABLE_PREFIXES__<NS> or --prefix ns=value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.dumpMetrics || state.registry == nil {
				return nil
			}
			return writeMetrics(cmd.ErrOrStderr(), state.registry)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Configuration file (default ./"+config.ConfigFileName+" when present)")
	cmd.PersistentFlags().StringArrayVarP(&flags.prefixes, "prefix", "p", nil, "Namespace prefix as ns=value (repeatable)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")
	cmd.PersistentFlags().BoolVar(&flags.dumpMetrics, "metrics", false, "Print Prometheus metrics to stderr when done")

	cmd.AddCommand(
		renderCmd(&state),
		attrsCmd(&state),
		versionCmd(),
	)

	return cmd
}

// init loads configuration and wires the engine.
func (a *app) init(cmd *cobra.Command, flags rootFlags) error {
	opts := config.Options{File: flags.configFile}
	if opts.File == "" {
		opts.Dir = "."
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	for _, p := range flags.prefixes {
		ns, value, ok := strings.Cut(p, "=")
		if !ok || ns == "" {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail(fmt.Sprintf("--prefix %q is not ns=value", p))
		}
		cfg.SetPrefix(ns, value)
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	naming, err := cfg.NamingConfig()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.naming = naming
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
	a.registry = prometheus.NewRegistry()
	a.engine = tracking.NewEngine(
		tracking.WithLogger(a.logger),
		tracking.WithMetrics(telemetry.NewMetrics(
			telemetry.WithRegistry(a.registry),
			telemetry.WithNamespace(cfg.Metrics.Namespace),
		)),
		tracking.WithTracer(telemetry.NewTracer()),
	)

	a.logger.Debug("configuration loaded",
		"file", cfg.Path(),
		"converter", cfg.Converter,
		"prefixes", len(cfg.Prefixes),
	)
	return nil
}

// newLogger builds the slog logger described by the log configuration.
func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// writeMetrics prints every gathered metric family in the text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
