// Package token defines the logic for ulp-wake-token.
//
// The command connects to the wake server and either lists the registered
// alarm types or constructs a new alarm token of a requested type.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/ulp-wake/internal/config"
	domain "github.com/oshokin/ulp-wake/internal/domain/wake"
	"github.com/oshokin/ulp-wake/internal/logger"
	pb "github.com/oshokin/ulp-wake/internal/pb/v1"
	"github.com/oshokin/ulp-wake/internal/service/common"
)

// Options configures the token command behavior.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// TypeName is the alarm type to construct a token of.
	TypeName string
	// Args are construction arguments passed to the type constructor.
	Args []string
	// List prints the registered alarm types instead of constructing a token.
	List bool
}

// Run lists alarm types or constructs a token on the wake server.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "ulp-wake-token")

	if opts.TypeName == "" {
		opts.TypeName = domain.ULPAlarmTypeName
	}

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Detect current system actor for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	if opts.List {
		return listTypes(ctx, client)
	}

	return createToken(ctx, client, actor, opts)
}

// listTypes prints the registered alarm type descriptors.
func listTypes(ctx context.Context, client *common.Client) error {
	response, err := client.ListAlarmTypes(ctx)
	if err != nil {
		return err
	}

	for _, typ := range response.GetTypes() {
		logger.InfoKV(ctx, "Registered alarm type", "name", typ.GetName(), "arg_count", typ.GetArgCount())
	}

	return nil
}

// createToken constructs a token of the requested type and logs its identity.
func createToken(ctx context.Context, client *common.Client, actor *pb.SystemActor, opts *Options) error {
	response, err := client.CreateAlarm(ctx, actor, opts.TypeName, opts.Args)
	if err != nil {
		return err
	}

	created := response.GetToken()
	if created == nil {
		return nil
	}

	createdAt := "<unknown>"
	if ts := created.GetCreatedAt(); ts != nil {
		createdAt = ts.AsTime().Format(time.RFC3339)
	}

	logger.InfoKV(ctx, "Alarm token constructed",
		"type", created.GetTypeName(),
		"token_id", created.GetId(),
		"armed", created.GetArmed(),
		"created_at", createdAt)

	return nil
}
