package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	"github.com/oshokin/ulp-wake/internal/logger"
	"github.com/oshokin/ulp-wake/internal/metrics"
	"github.com/oshokin/ulp-wake/internal/repository/journal"
	repo "github.com/oshokin/ulp-wake/internal/repository/state"
)

var errTestLoad = errors.New("test load error")

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// state is the wake state to return from Load operations.
	state *domain.State
	// loadErr is the error to return from Load operations.
	loadErr error
	// saveErr is the error to return from Save operations.
	saveErr error
	// saved stores the last state passed to Save operations.
	saved *domain.State
}

// Load retrieves the current state from the memory repository.
func (m *memoryRepository) Load(context.Context) (*domain.State, error) {
	return m.state, m.loadErr
}

// Save stores the provided domain.State in memory. It overwrites any previously saved state.
func (m *memoryRepository) Save(_ context.Context, s *domain.State) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.saved = s

	return nil
}

// memoryJournal is a Recorder that keeps appended events in a slice.
type memoryJournal struct {
	// events stores every appended event in append order.
	events []*journal.Event
}

// Append stores the event.
func (m *memoryJournal) Append(_ context.Context, e *journal.Event) error {
	m.events = append(m.events, e)

	return nil
}

// Recent returns the stored events newest-first.
func (m *memoryJournal) Recent(context.Context, int) ([]*journal.Event, error) {
	out := make([]*journal.Event, 0, len(m.events))
	for i := len(m.events) - 1; i >= 0; i-- {
		out = append(out, m.events[i])
	}

	return out, nil
}

// Close is a no-op.
func (m *memoryJournal) Close() error { return nil }

// testActor returns the actor used across the service tests.
func testActor() *domain.Actor {
	return &domain.Actor{
		Hostname: "esp32-host",
		Username: "o.shokin",
	}
}

// TestNewService_LoadsStateOrDefaults asserts newService behavior on existing, missing, and error states.
func TestNewService_LoadsStateOrDefaults(t *testing.T) {
	t.Parallel()

	// Existing state.
	old := &domain.State{
		Timestamp:     time.Unix(100, 0),
		LastActor:     testActor(),
		WokeThisCycle: true,
		Cause: &domain.TokenRef{
			ID:       "01J0TESTTOKEN",
			TypeName: domain.ULPAlarmTypeName,
		},
	}

	s, err := newService(context.Background(), &memoryRepository{state: old}, nil, nil)

	require.NoError(t, err)
	require.True(t, s.state.WokeThisCycle)
	require.Equal(t, old.LastActor, s.state.LastActor)
	require.Equal(t, old.Cause, s.state.Cause)

	// Not found -> default.
	s, err = newService(context.Background(), &memoryRepository{loadErr: repo.ErrNotFound}, nil, nil)

	require.NoError(t, err)
	require.False(t, s.state.WokeThisCycle)

	// Other error.
	s, err = newService(context.Background(), &memoryRepository{loadErr: errTestLoad}, nil, nil)

	require.Error(t, err)
	require.Nil(t, s)
}

// TestService_CreateAlarm verifies token construction, journaling and metrics.
func TestService_CreateAlarm(t *testing.T) {
	t.Parallel()

	recorder := new(memoryJournal)
	counters := metrics.New()

	s, err := newService(context.Background(), nil, recorder, counters)
	require.NoError(t, err)

	token, err := s.CreateAlarm(context.Background(), testActor(), domain.ULPAlarmTypeName, nil)

	require.NoError(t, err)
	require.NotEmpty(t, token.ID())
	require.False(t, token.Armed())
	require.Len(t, s.tokens, 1)

	require.Len(t, recorder.events, 1)
	require.Equal(t, journal.KindToken, recorder.events[0].Kind)
	require.Equal(t, token.ID(), recorder.events[0].TokenID)
	require.Equal(t, "esp32-host", recorder.events[0].Actor.Hostname)

	// Unknown types and unexpected arguments are rejected by the registry.
	_, err = s.CreateAlarm(context.Background(), testActor(), "NoSuchAlarm", nil)
	require.ErrorIs(t, err, domain.ErrUnknownType)

	_, err = s.CreateAlarm(context.Background(), testActor(), domain.ULPAlarmTypeName, []string{"extra"})
	require.ErrorIs(t, err, domain.ErrArgCount)
}

// TestService_ReportWake_RequiresToken ensures wake-ups cannot be attributed without a token.
func TestService_ReportWake_RequiresToken(t *testing.T) {
	t.Parallel()

	s, err := newService(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	_, err = s.ReportWake(context.Background(), testActor(), domain.ULPAlarmTypeName)
	require.ErrorIs(t, err, domain.ErrNoTokenOfType)
}

// TestService_ReportAndReset exercises a full wake cycle against the repository and journal.
func TestService_ReportAndReset(t *testing.T) {
	t.Parallel()

	repository := new(memoryRepository)
	recorder := new(memoryJournal)

	s, err := newService(context.Background(), repository, recorder, nil)
	require.NoError(t, err)

	token, err := s.CreateAlarm(context.Background(), testActor(), domain.ULPAlarmTypeName, nil)
	require.NoError(t, err)

	actor := testActor()

	state, err := s.ReportWake(context.Background(), actor, domain.ULPAlarmTypeName)

	require.NoError(t, err)
	require.True(t, state.WokeThisCycle)
	require.NotNil(t, state.Cause)
	require.Equal(t, token.ID(), state.Cause.ID)
	require.Equal(t, domain.ULPAlarmTypeName, state.Cause.TypeName)

	// Cloned.
	require.NotSame(t, actor, state.LastActor)
	require.NotNil(t, repository.saved)
	require.True(t, repository.saved.WokeThisCycle)

	current := s.GetWakeState(context.Background())
	require.True(t, current.WokeThisCycle)

	cleared, err := s.ResetWakeCycle(context.Background(), actor)

	require.NoError(t, err)
	require.False(t, cleared.WokeThisCycle)
	require.Nil(t, cleared.Cause)
	require.False(t, repository.saved.WokeThisCycle)

	// Journal rows: token construction, wake, reset.
	events, err := recorder.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, journal.KindReset, events[0].Kind)
	require.Equal(t, journal.KindWake, events[1].Kind)
	require.Equal(t, journal.KindToken, events[2].Kind)
}

// TestService_GetWakeState_LogsStructuredFields verifies state reads log
// key-value fields instead of a concatenated message.
func TestService_GetWakeState_LogsStructuredFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

	s, err := newService(ctx, nil, nil, nil)
	require.NoError(t, err)

	_ = s.GetWakeState(ctx)

	entries := logs.FilterMessage("Wake state requested").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Contains(t, fields, "woke_this_cycle")
	require.Equal(t, false, fields["woke_this_cycle"])
}

// TestService_ReportWake_PersistFailure surfaces repository errors to the caller.
func TestService_ReportWake_PersistFailure(t *testing.T) {
	t.Parallel()

	repository := &memoryRepository{
		loadErr: repo.ErrNotFound,
		saveErr: errors.New("disk full"),
	}

	s, err := newService(context.Background(), repository, nil, nil)
	require.NoError(t, err)

	_, err = s.CreateAlarm(context.Background(), testActor(), domain.ULPAlarmTypeName, nil)
	require.NoError(t, err)

	_, err = s.ReportWake(context.Background(), testActor(), domain.ULPAlarmTypeName)
	require.Error(t, err)
}

// TestResolveListenAddress verifies address override and port extraction behavior.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	address, err := resolveListenAddress("server.example.com:8080", "")
	require.NoError(t, err)
	require.Equal(t, ":8080", address)

	address, err = resolveListenAddress("server.example.com:8080", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", address)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("not-an-address", "")
	require.Error(t, err)
}
