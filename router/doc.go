// Package router resolves an envelope to a capability provider, invokes it and
// normalizes every failure that occurs while dispatching into an error outcome
// rather than an error return. Successful results are additionally written to
// a best-effort cache; the cache is never consulted before dispatch.
package router
