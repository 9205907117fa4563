// Package telemetry provides Prometheus metrics and OpenTelemetry spans for
// the tracking engine.
//
// Both types are nil-safe: a nil *Metrics records nothing and a nil *Tracer
// starts no-op spans.
package telemetry
