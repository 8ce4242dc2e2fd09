// Package espulp is the hardware abstraction layer for the ultra-low-power
// coprocessor attachment. Only the pieces the wake domain needs are modelled
// here: the native backing state of a wake alarm and its construct routine.
//
// Program loading, shared-memory access and interrupt wiring live in the
// platform firmware, not in this package.
package espulp

// AlarmState is the native backing state of one ULP wake alarm.
// It is owned exclusively by the token that embeds it and is never shared.
type AlarmState struct {
	// armed reports whether the wake source has been handed to a
	// sleep-enabling call. Construction always leaves it false.
	armed bool
}

// ConstructAlarm brings the state to its unarmed baseline.
// It always returns and never fails.
func ConstructAlarm(s *AlarmState) {
	s.armed = false
}

// Armed reports whether the wake source has been activated.
func (s *AlarmState) Armed() bool {
	return s.armed
}
