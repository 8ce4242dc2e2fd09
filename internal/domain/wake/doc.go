// Package wake contains the core domain types for ULP wake supervision.
//
// It defines alarm tokens (opaque wake-source handles), the static type
// descriptor table through which scripted callers construct them, and the
// recorded wake State with Clone helpers to avoid leaking internal
// references.
package wake
