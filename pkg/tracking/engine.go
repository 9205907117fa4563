package tracking

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/trackable/internal/errors"
	"github.com/vango-dev/trackable/pkg/telemetry"
	"github.com/vango-dev/trackable/pkg/vdom"
)

// Engine runs Merge and ResolveTarget with logging, metrics and tracing.
// The results are identical to calling those functions directly.
type Engine struct {
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  *telemetry.Tracer
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets the metrics sink. Default: none.
func WithMetrics(m *telemetry.Metrics) EngineOption {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithTracer sets the tracer. Default: none.
func WithTracer(t *telemetry.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Merge is Merge with logging and metrics.
func (e *Engine) Merge(ctx context.Context, cfg *NamingConfig, namespaces ...NamespaceProps) (AttributeMap, error) {
	attrs, err := Merge(cfg, namespaces...)
	if err != nil {
		e.fail(ctx, err)
		return nil, err
	}
	for _, ns := range namespaces {
		e.metrics.RecordMerge(string(ns.ID), len(ns.Props))
	}
	e.logger.DebugContext(ctx, "merged tracking attributes",
		"namespaces", len(namespaces),
		"attributes", len(attrs),
	)
	return attrs, nil
}

// Resolve is ResolveTarget with logging and metrics. An invalid replacement
// element is logged as a warning and yields nil, never an error.
func (e *Engine) Resolve(ctx context.Context, children []*vdom.VNode, r Replacement, attrs AttributeMap) *vdom.VNode {
	node := ResolveTarget(children, r, attrs)
	if !r.Valid() {
		invalid := errors.New(errors.CodeInvalidReplacement)
		e.logger.WarnContext(ctx, "replacement is not a renderable element; rendering nothing",
			"code", invalid.Code,
		)
	}
	e.metrics.RecordResolution(r.Kind().String(), node != nil && (node.Kind != vdom.KindFragment || len(node.Children) > 0))
	return node
}

// Render merges and resolves props inside one span. A nil cfg falls back to
// the config carried by ctx, then to Default.
func (e *Engine) Render(ctx context.Context, cfg *NamingConfig, props Props) (node *vdom.VNode, err error) {
	if cfg == nil {
		cfg = FromContext(ctx)
	}
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "tracking.Render",
		attribute.Int("tracking.namespaces", len(props.Namespaces)),
		attribute.String("tracking.replacement", props.Replacement.Kind().String()),
	)
	defer func() {
		telemetry.End(span, err)
		e.metrics.ObserveRender(time.Since(start))
	}()

	attrs, err := e.Merge(ctx, cfg, props.Namespaces...)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("tracking.attributes", len(attrs)))
	return e.Resolve(ctx, props.Children, props.Replacement, attrs), nil
}

func (e *Engine) fail(ctx context.Context, err error) {
	code := ""
	var te *errors.Error
	if stderrors.As(err, &te) {
		code = te.Code
	}
	e.metrics.RecordError(code)
	e.logger.ErrorContext(ctx, "tracking render failed", "error", err)
}
