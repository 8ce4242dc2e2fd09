package wake

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/oshokin/ulp-wake/internal/hal/espulp"
)

// ULPAlarmTypeName is the registered identifier of the ULP wake-up alarm.
const ULPAlarmTypeName = "ULPAlarm"

// ulpAlarmType is the static descriptor for ULPAlarm.
var ulpAlarmType = &Type{
	Name:     ULPAlarmTypeName,
	ArgCount: 0,
	New:      func() Alarm { return NewULPAlarm() },
}

// constructULP is the delegated hardware-abstraction construct routine.
// Swapped in tests to observe the delegation.
var constructULP = espulp.ConstructAlarm

// ULPAlarm is the token for "the ULP requested wake-up". The native backing
// state is owned by the token alone and is opaque to callers.
type ULPAlarm struct {
	id      string
	created time.Time
	native  espulp.AlarmState
}

// NewULPAlarm creates an alarm that will be triggered when the ULP requests
// wake-up. The token is inert until passed to a sleep-enabling call.
func NewULPAlarm() *ULPAlarm {
	a := &ULPAlarm{
		id:      newTokenID(),
		created: time.Now(),
	}
	constructULP(&a.native)

	return a
}

// ID returns the unique identity of this token.
func (a *ULPAlarm) ID() string {
	return a.id
}

// Type returns the ULPAlarm descriptor.
func (a *ULPAlarm) Type() *Type {
	return ulpAlarmType
}

// Armed reports whether the token has been activated.
func (a *ULPAlarm) Armed() bool {
	return a.native.Armed()
}

// CreatedAt returns the construction time of the token.
func (a *ULPAlarm) CreatedAt() time.Time {
	return a.created
}

// newTokenID returns a lexically sortable unique token identity.
func newTokenID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		// crypto/rand does not fail on supported platforms.
		panic(err)
	}

	return id.String()
}
