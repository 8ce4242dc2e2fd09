// Package state implements persistence for the recorded wake State.
//
// The FileRepository stores and loads the state as JSON on disk and exposes a
// Repository interface that the server service depends on. Persisting the
// state lets the supervisor report the wake cause across restarts, the same
// way firmware keeps the wake alarm across a deep-sleep cycle.
package state
