// Package model defines the value types exchanged between the orchestration
// core and capability providers: the request context shared across one logical
// request, the envelope describing a single unit of dispatchable work and the
// outcome produced by attempting to execute it. The types carry no behaviour
// beyond construction helpers; all coordination logic lives in the router and
// workflow packages.
package model
