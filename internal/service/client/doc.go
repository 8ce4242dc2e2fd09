// Package client defines the shared logic for ulp-wake-report/reset.
//
// The command connects to the wake server and either reports a wake-up
// attributed to an alarm type or clears the cycle, retrying until the server
// confirms the requested state.
package client
