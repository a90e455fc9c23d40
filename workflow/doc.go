// Package workflow runs named, statically configured sequences of operations
// through the router, threading each step's result into the next step's
// payload and aborting on the first failed step. Steps execute strictly one at
// a time; there is no fan-out within one invocation.
package workflow
