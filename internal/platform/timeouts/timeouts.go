// Package timeouts defines shared timeout constants used across arena
// commands so the durations stay discoverable in one place.
package timeouts

import "time"

// APIRequest caps a single outbound call to the esports backend when no
// explicit timeout is configured.
const APIRequest = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionSweep is the interval between expired-session purges.
const SessionSweep = 15 * time.Minute
