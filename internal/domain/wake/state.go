package wake

import "time"

// Actor identifies who performed an action in the system.
type Actor struct {
	// Hostname is the machine name where the action was performed.
	Hostname string
	// Username is the system user who triggered the action.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// TokenRef identifies the token recorded as the wake cause.
type TokenRef struct {
	// ID is the identity of the cause token.
	ID string
	// TypeName is the registered type of the cause token.
	TypeName string
	// CreatedAt is the construction time of the cause token.
	CreatedAt time.Time
}

// Clone returns a copy of the reference.
func (r *TokenRef) Clone() *TokenRef {
	if r == nil {
		return nil
	}

	cloned := *r

	return &cloned
}

// State represents the recorded wake status at a specific point in time.
type State struct {
	// Timestamp is when the wake state was last changed.
	Timestamp time.Time
	// LastActor is the user who last modified the wake state.
	LastActor *Actor
	// WokeThisCycle indicates whether a wake-up was recorded since the
	// last reset.
	WokeThisCycle bool
	// Cause references the token the wake-up was attributed to, if any.
	Cause *TokenRef
}

// Clone returns a copy of the state to avoid leaking internal references.
func (s *State) Clone() *State {
	return &State{
		Timestamp:     s.Timestamp,
		LastActor:     s.LastActor.Clone(),
		WokeThisCycle: s.WokeThisCycle,
		Cause:         s.Cause.Clone(),
	}
}
