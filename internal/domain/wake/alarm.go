package wake

import "time"

// Alarm is an opaque wake-source token. A freshly constructed token is
// inert: it only takes effect once handed to a sleep-enabling call, which
// happens outside this package.
type Alarm interface {
	// ID returns the unique identity of this token. Two independently
	// constructed tokens always have different identities.
	ID() string
	// Type returns the descriptor of the alarm type.
	Type() *Type
	// Armed reports whether the token has been activated.
	Armed() bool
	// CreatedAt returns the construction time of the token.
	CreatedAt() time.Time
}

// FindTriggered returns the first token in alarms whose type matches the
// fired type name, or nil when none matches. Matching is by type identity,
// mirroring how the wake dispatcher attributes a wake-up to one of the
// tokens it was given.
func FindTriggered(typeName string, alarms []Alarm) Alarm {
	for _, a := range alarms {
		if a != nil && a.Type().Name == typeName {
			return a
		}
	}

	return nil
}
