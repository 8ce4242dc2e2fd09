package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/ulp-wake/internal/config"
	"github.com/oshokin/ulp-wake/internal/domain/wake"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
)

// Repository defines persistence operations for the recorded wake state.
type Repository interface {
	Load(ctx context.Context) (*wake.State, error)
	Save(ctx context.Context, state *wake.State) error
}

// FileRepository persists the wake state to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// ErrNotFound is returned when the state file does not exist yet.
var ErrNotFound = errors.New("state not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the state from disk.
func (r *FileRepository) Load(_ context.Context) (*wake.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var protoState pb.WakeStateResponse
	if err = protojson.Unmarshal(contents, &protoState); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	return fromProto(&protoState), nil
}

// Save writes the state to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, state *wake.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		protoState     = toProto(state)
		marshalOptions = protojson.MarshalOptions{
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(protoState)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// fromProto converts protobuf WakeStateResponse into the domain State model.
func fromProto(protoState *pb.WakeStateResponse) *wake.State {
	var (
		timestamp time.Time
		actor     *wake.Actor
		cause     *wake.TokenRef
	)

	if ts := protoState.GetTimestamp(); ts != nil {
		timestamp = ts.AsTime()
	}

	if protoActor := protoState.GetLastActor(); protoActor != nil {
		actor = &wake.Actor{
			Hostname: protoActor.GetHostname(),
			Username: protoActor.GetUsername(),
		}
	}

	if token := protoState.GetWakeCause(); token != nil {
		cause = &wake.TokenRef{
			ID:       token.GetId(),
			TypeName: token.GetTypeName(),
		}
		if created := token.GetCreatedAt(); created != nil {
			cause.CreatedAt = created.AsTime()
		}
	}

	return &wake.State{
		Timestamp:     timestamp,
		LastActor:     actor,
		WokeThisCycle: protoState.GetWokeThisCycle(),
		Cause:         cause,
	}
}

// toProto converts the domain State model into protobuf WakeStateResponse.
func toProto(state *wake.State) *pb.WakeStateResponse {
	var timestamp *timestamppb.Timestamp
	if !state.Timestamp.IsZero() {
		timestamp = timestamppb.New(state.Timestamp)
	}

	var actor *pb.SystemActor
	if state.LastActor != nil {
		actor = &pb.SystemActor{
			Hostname: state.LastActor.Hostname,
			Username: state.LastActor.Username,
		}
	}

	var cause *pb.AlarmToken
	if state.Cause != nil {
		cause = &pb.AlarmToken{
			Id:       state.Cause.ID,
			TypeName: state.Cause.TypeName,
		}
		if !state.Cause.CreatedAt.IsZero() {
			cause.CreatedAt = timestamppb.New(state.Cause.CreatedAt)
		}
	}

	return &pb.WakeStateResponse{
		Timestamp:     timestamp,
		LastActor:     actor,
		WokeThisCycle: state.WokeThisCycle,
		WakeCause:     cause,
	}
}
