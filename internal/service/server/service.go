package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	"github.com/oshokin/ulp-wake/internal/logger"
	"github.com/oshokin/ulp-wake/internal/metrics"
	"github.com/oshokin/ulp-wake/internal/repository/journal"
	repo "github.com/oshokin/ulp-wake/internal/repository/state"
)

// service encapsulates the wake business logic and persistence orchestration.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// repo handles persistent storage of wake state.
	repo repo.Repository
	// journal records the append-only wake-event history, may be nil.
	journal journal.Recorder
	// metrics holds the supervisor counters, may be nil.
	metrics *metrics.Metrics
	// state is the current in-memory wake state.
	state *domain.State
	// tokens holds every alarm token constructed since startup.
	tokens []domain.Alarm
	// mu protects concurrent access to state and tokens.
	mu sync.RWMutex
}

// newService creates a service backed by the provided repository.
func newService(ctx context.Context, repository repo.Repository, recorder journal.Recorder, counters *metrics.Metrics) (*service, error) {
	s := &service{
		repo:    repository,
		journal: recorder,
		metrics: counters,
		state: &domain.State{
			Timestamp:     time.Now(),
			WokeThisCycle: false,
		},
	}

	if repository == nil {
		return s, nil
	}

	state, err := repository.Load(ctx)
	switch {
	case err == nil:
		if state != nil {
			s.state = state
		}
	case errors.Is(err, repo.ErrNotFound):
		// Keep default state.
	default:
		return nil, fmt.Errorf("load state: %w", err)
	}

	return s, nil
}

// CreateAlarm constructs a new alarm token of the requested type and remembers
// it so later wake-ups can be attributed to it. The token itself stays inert.
func (s *service) CreateAlarm(ctx context.Context, actor *domain.Actor, typeName string, args []string) (domain.Alarm, error) {
	token, err := domain.Construct(typeName, args...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tokens = append(s.tokens, token)
	s.mu.Unlock()

	s.recordEvent(ctx, &journal.Event{
		At:       token.CreatedAt(),
		Kind:     journal.KindToken,
		TypeName: token.Type().Name,
		TokenID:  token.ID(),
		Actor:    actorValue(actor),
	})

	if s.metrics != nil {
		s.metrics.TokensConstructed.WithLabelValues(token.Type().Name).Inc()
	}

	logger.InfoKV(ctx, "Alarm token constructed", "type", token.Type().Name, "token_id", token.ID(), "actor", actor)

	return token, nil
}

// ListAlarmTypes returns the registered alarm type descriptors.
func (s *service) ListAlarmTypes(context.Context) []*domain.Type {
	return domain.Types()
}

// GetWakeState returns the current wake status.
func (s *service) GetWakeState(ctx context.Context) *domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logger.InfoKV(ctx, "Wake state requested", "woke_this_cycle", s.state.WokeThisCycle, "actor", s.state.LastActor)

	result := s.state.Clone()

	return result
}

// ReportWake records a wake-up attributed to the named alarm type. The wake-up
// must match a previously constructed token, otherwise it cannot be attributed.
func (s *service) ReportWake(ctx context.Context, actor *domain.Actor, typeName string) (*domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := domain.FindTriggered(typeName, s.tokens)
	if token == nil {
		return nil, fmt.Errorf("%q: %w", typeName, domain.ErrNoTokenOfType)
	}

	s.state = &domain.State{
		Timestamp:     time.Now(),
		LastActor:     actor.Clone(),
		WokeThisCycle: true,
		Cause: &domain.TokenRef{
			ID:        token.ID(),
			TypeName:  token.Type().Name,
			CreatedAt: token.CreatedAt(),
		},
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, &journal.Event{
		At:       s.state.Timestamp,
		Kind:     journal.KindWake,
		TypeName: token.Type().Name,
		TokenID:  token.ID(),
		Actor:    actorValue(actor),
	})

	if s.metrics != nil {
		s.metrics.WakesReported.WithLabelValues(token.Type().Name).Inc()
	}

	logger.InfoKV(ctx, "Wake-up recorded", "type", token.Type().Name, "token_id", token.ID(), "actor", actor)

	result := s.state.Clone()

	return result, nil
}

// ResetWakeCycle clears the recorded wake-up for a new sleep cycle.
func (s *service) ResetWakeCycle(ctx context.Context, actor *domain.Actor) (*domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = &domain.State{
		Timestamp:     time.Now(),
		LastActor:     actor.Clone(),
		WokeThisCycle: false,
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, &journal.Event{
		At:    s.state.Timestamp,
		Kind:  journal.KindReset,
		Actor: actorValue(actor),
	})

	if s.metrics != nil {
		s.metrics.CycleResets.Inc()
	}

	logger.InfoKV(ctx, "Wake cycle reset", "actor", actor)

	result := s.state.Clone()

	return result, nil
}

// persist saves the current state, caller must hold mu.
func (s *service) persist(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	if err := s.repo.Save(ctx, s.state); err != nil {
		logger.Errorf(ctx, "Failed to persist wake state: %v", err)

		return fmt.Errorf("persist state: %w", err)
	}

	return nil
}

// recordEvent appends to the journal. Journal failures are logged, not fatal:
// the authoritative state already lives in the state file.
func (s *service) recordEvent(ctx context.Context, e *journal.Event) {
	if s.journal == nil {
		return
	}

	if err := s.journal.Append(ctx, e); err != nil {
		logger.Errorf(ctx, "Failed to append journal event: %v", err)
	}
}

// actorValue dereferences an actor for journal rows.
func actorValue(actor *domain.Actor) domain.Actor {
	if actor == nil {
		return domain.Actor{}
	}

	return *actor
}
