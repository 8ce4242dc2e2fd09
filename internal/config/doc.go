// Package config defines connection settings used by binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the server gRPC address, the optional metrics
// address and the state and journal file locations.
package config
