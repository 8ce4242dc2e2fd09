// Package wake implements the gRPC transport for the wake supervisor.
//
// It adapts domain types to protobuf messages and exposes a server that calls
// into a provided business-service interface.
package wake
