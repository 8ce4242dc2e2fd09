package wake

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	CreateAlarm(ctx context.Context, actor *domain.Actor, typeName string, args []string) (domain.Alarm, error)
	ListAlarmTypes(ctx context.Context) []*domain.Type
	GetWakeState(ctx context.Context) *domain.State
	ReportWake(ctx context.Context, actor *domain.Actor, typeName string) (*domain.State, error)
	ResetWakeCycle(ctx context.Context, actor *domain.Actor) (*domain.State, error)
}

// Server implements the WakeService gRPC API.
type Server struct {
	pb.UnimplementedWakeServiceServer

	// service provides the business logic for wake operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// CreateAlarm constructs a new alarm token of the requested type.
func (s *Server) CreateAlarm(ctx context.Context, req *pb.CreateAlarmRequest) (*pb.CreateAlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	actor := toDomainActor(req.GetActor())

	token, err := s.service.CreateAlarm(ctx, actor, req.GetTypeName(), req.GetArgs())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.CreateAlarmResponse{Token: toProtoToken(token)}, nil
}

// ListAlarmTypes returns the registered alarm type descriptors.
func (s *Server) ListAlarmTypes(ctx context.Context, _ *pb.ListAlarmTypesRequest) (*pb.ListAlarmTypesResponse, error) {
	types := s.service.ListAlarmTypes(ctx)

	out := make([]*pb.AlarmTypeInfo, 0, len(types))
	for _, typ := range types {
		out = append(out, &pb.AlarmTypeInfo{
			Name:     typ.Name,
			ArgCount: uint32(typ.ArgCount),
		})
	}

	return &pb.ListAlarmTypesResponse{Types: out}, nil
}

// GetWakeState returns the currently recorded wake status.
func (s *Server) GetWakeState(ctx context.Context, _ *pb.GetWakeStateRequest) (*pb.WakeStateResponse, error) {
	state := s.service.GetWakeState(ctx)

	return toProtoState(state), nil
}

// ReportWake records a wake-up attributed to the named alarm type.
func (s *Server) ReportWake(ctx context.Context, req *pb.ReportWakeRequest) (*pb.WakeStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	actor := toDomainActor(req.GetActor())

	state, err := s.service.ReportWake(ctx, actor, req.GetTypeName())
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoState(state), nil
}

// ResetWakeCycle clears the recorded wake-up for a new sleep cycle.
func (s *Server) ResetWakeCycle(ctx context.Context, req *pb.ResetWakeCycleRequest) (*pb.WakeStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	actor := toDomainActor(req.GetActor())

	state, err := s.service.ResetWakeCycle(ctx, actor)
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoState(state), nil
}

// toStatusError maps domain errors to gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownType):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrArgCount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNoTokenOfType):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "unable to persist state")
	}
}

// toDomainActor converts a protobuf SystemActor to a domain Actor.
func toDomainActor(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toProtoToken converts an alarm token to its protobuf representation.
func toProtoToken(token domain.Alarm) *pb.AlarmToken {
	if token == nil {
		return nil
	}

	return &pb.AlarmToken{
		Id:        token.ID(),
		TypeName:  token.Type().Name,
		CreatedAt: timestamppb.New(token.CreatedAt()),
		Armed:     token.Armed(),
	}
}

// toProtoState converts a domain.State object to a pb.WakeStateResponse protobuf message.
func toProtoState(state *domain.State) *pb.WakeStateResponse {
	if state == nil {
		return &pb.WakeStateResponse{}
	}

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
