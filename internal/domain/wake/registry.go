package wake

import (
	"errors"
	"fmt"
)

// Type is an immutable descriptor identifying an alarm type to the
// surrounding object system: a name, the number of construction arguments
// the constructor declares, and a reference to the constructor itself.
type Type struct {
	// Name is the registered alarm type identifier.
	Name string
	// ArgCount is the number of construction arguments the type accepts.
	ArgCount int
	// New constructs a new token of this type.
	New func() Alarm
}

// alarmTypes is the static descriptor table. Entries are fixed at compile
// time and never mutated.
var alarmTypes = []*Type{
	ulpAlarmType,
}

var (
	// ErrUnknownType is returned when a type name has no registered descriptor.
	ErrUnknownType = errors.New("alarm type is not registered")
	// ErrArgCount is returned when the supplied construction arguments do
	// not match the count the type declares.
	ErrArgCount = errors.New("wrong number of construction arguments")
	// ErrNoTokenOfType is returned when a wake-up names a type no live token
	// was constructed for.
	ErrNoTokenOfType = errors.New("no constructed token of requested type")
)

// LookupType returns the descriptor registered under the provided name.
func LookupType(name string) (*Type, error) {
	for _, typ := range alarmTypes {
		if typ.Name == name {
			return typ, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownType)
}

// Types returns the registered descriptors in registration order.
// The returned slice is a copy; the table itself is immutable.
func Types() []*Type {
	out := make([]*Type, len(alarmTypes))
	copy(out, alarmTypes)

	return out
}

// Construct resolves a type descriptor by name and invokes its constructor,
// enforcing the declared argument count. This is the path remote and
// scripted callers take; Go callers use the typed constructors directly.
func Construct(name string, args ...string) (Alarm, error) {
	typ, err := LookupType(name)
	if err != nil {
		return nil, err
	}

	if len(args) != typ.ArgCount {
		return nil, fmt.Errorf("%s given %d arguments, takes %d: %w", typ.Name, len(args), typ.ArgCount, ErrArgCount)
	}

	return typ.New(), nil
}
