package wake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLookupType verifies descriptor resolution for known and unknown names.
func TestLookupType(t *testing.T) {
	t.Parallel()

	typ, err := LookupType(ULPAlarmTypeName)
	require.NoError(t, err)
	require.Equal(t, ULPAlarmTypeName, typ.Name)
	require.Zero(t, typ.ArgCount)

	_, err = LookupType("PinAlarm")
	require.ErrorIs(t, err, ErrUnknownType)
}

// TestTypes_ReturnsCopy ensures mutating the returned slice leaves the table intact.
func TestTypes_ReturnsCopy(t *testing.T) {
	t.Parallel()

	types := Types()
	require.Len(t, types, 1)

	types[0] = nil

	again := Types()
	require.NotNil(t, again[0])
	require.Equal(t, ULPAlarmTypeName, again[0].Name)
}

// TestConstruct covers the scripted construction path, including the
// argument-count error for a zero-argument type.
func TestConstruct(t *testing.T) {
	t.Parallel()

	a, err := Construct(ULPAlarmTypeName)
	require.NoError(t, err)
	require.Equal(t, ULPAlarmTypeName, a.Type().Name)

	_, err = Construct(ULPAlarmTypeName, "extra")
	require.ErrorIs(t, err, ErrArgCount)

	_, err = Construct("TouchAlarm")
	require.ErrorIs(t, err, ErrUnknownType)
}

// TestConstruct_DeclaredArgumentCount verifies the argument count must match
// the descriptor exactly, in both directions.
// Not parallel: it swaps the descriptor table.
func TestConstruct_DeclaredArgumentCount(t *testing.T) {
	original := alarmTypes
	alarmTypes = append([]*Type{{
		Name:     "PairAlarm",
		ArgCount: 2,
		New:      func() Alarm { return NewULPAlarm() },
	}}, original...)

	t.Cleanup(func() { alarmTypes = original })

	_, err := Construct("PairAlarm")
	require.ErrorIs(t, err, ErrArgCount)

	_, err = Construct("PairAlarm", "only-one")
	require.ErrorIs(t, err, ErrArgCount)

	_, err = Construct("PairAlarm", "one", "two", "three")
	require.ErrorIs(t, err, ErrArgCount)

	_, err = Construct("PairAlarm", "one", "two")
	require.NoError(t, err)
}

// TestFindTriggered checks type-tag dispatch over a token set.
func TestFindTriggered(t *testing.T) {
	t.Parallel()

	first := NewULPAlarm()
	second := NewULPAlarm()

	got := FindTriggered(ULPAlarmTypeName, []Alarm{nil, first, second})
	require.Same(t, first, got)

	require.Nil(t, FindTriggered("PinAlarm", []Alarm{first}))
	require.Nil(t, FindTriggered(ULPAlarmTypeName, nil))
}
