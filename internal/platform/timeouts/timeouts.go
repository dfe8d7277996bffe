// Package timeouts defines shared timeout constants for the landing service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StreamKeepAlive is the gap between comment frames on an idle event stream,
// kept below common proxy idle cutoffs.
const StreamKeepAlive = 25 * time.Second

// Telemetry caps the time spent flushing spans on exit.
const Telemetry = 5 * time.Second
