//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/ulp-wake/internal/config"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
)

// Client wraps the gRPC WakeService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the wake server.
	conn *grpc.ClientConn
	// api is the generated WakeService client interface.
	api pb.WakeServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
)

// Dial establishes a gRPC connection to the wake server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial wake server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewWakeServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// CreateAlarm constructs a new alarm token of the named type on the server.
func (c *Client) CreateAlarm(
	ctx context.Context,
	actor *pb.SystemActor,
	typeName string,
	args []string,
) (*pb.CreateAlarmResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.CreateAlarmRequest{
		Actor:    actor,
		TypeName: typeName,
		Args:     args,
	}

	response, err := c.api.CreateAlarm(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("create alarm: %w", err)
	}

	return response, nil
}

// ListAlarmTypes retrieves the registered alarm type descriptors.
func (c *Client) ListAlarmTypes(ctx context.Context) (*pb.ListAlarmTypesResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ListAlarmTypes(callCtx, new(pb.ListAlarmTypesRequest))
	if err != nil {
		return nil, fmt.Errorf("list alarm types: %w", err)
	}

	return response, nil
}

// GetWakeState retrieves the current wake state.
func (c *Client) GetWakeState(ctx context.Context, actor *pb.SystemActor) (*pb.WakeStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetWakeState(callCtx, &pb.GetWakeStateRequest{RequestingActor: actor})
	if err != nil {
		return nil, fmt.Errorf("get wake state: %w", err)
	}

	return resp, nil
}

// ReportWake records a wake-up attributed to the named alarm type.
func (c *Client) ReportWake(
	ctx context.Context,
	actor *pb.SystemActor,
	typeName string,
) (*pb.WakeStateResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.ReportWakeRequest{
		Actor:    actor,
		TypeName: typeName,
	}

	response, err := c.api.ReportWake(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("report wake: %w", err)
	}

	return response, nil
}

// ResetWakeCycle clears the recorded wake-up on the server.
func (c *Client) ResetWakeCycle(ctx context.Context, actor *pb.SystemActor) (*pb.WakeStateResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ResetWakeCycle(callCtx, &pb.ResetWakeCycleRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("reset wake cycle: %w", err)
	}

	return response, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
