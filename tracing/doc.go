// Package tracing is a thin wrapper around OpenTelemetry so that the rest of
// the code-base can start and end spans without depending on the upstream API
// directly. Instrumentation is kept in a separate package so applications that
// do not require tracing can leave the provider uninitialised, in which case
// spans are no-ops.
package tracing
