// Package agentic coordinates a set of independently implemented capability
// providers. It routes typed work envelopes to registered providers through a
// static operation→provider table and chains several operations into ordered,
// data-threading workflows that abort on the first failed step.
//
// The package is a library, not a service: the embedding application
// constructs the service graph explicitly, registers its providers and drives
// dispatch through Route and ExecuteWorkflow.
//
//	svc := agentic.New(
//	    agentic.WithProviders(profiler, curator),
//	    agentic.WithCache(cache.NewRedis("localhost:6379", "", 0)),
//	)
//	outcome := svc.Route(ctx, model.NewEnvelope("api", model.AutoRoute,
//	    "profile_analysis", payload, requestContext))
//
// Every failure that occurs while dispatching a specific operation is reported
// through the outcome's status rather than an error return; the only error
// path is a caller-usage error such as an unknown workflow name.
package agentic
