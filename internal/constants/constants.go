package constants

import "time"

const (
	// UserAgent identifies the checker on every outbound request.
	UserAgent = "StartupLaunchChecker/1.0"

	// DefaultFetchTimeout bounds the main page fetch.
	DefaultFetchTimeout = 10 * time.Second
	// DefaultProbeTimeout bounds each well-known path probe.
	DefaultProbeTimeout = 8 * time.Second

	// FastLoadThresholdSeconds is the response-time ceiling for the
	// fast-load checklist item.
	FastLoadThresholdSeconds = 2.0

	// DefaultRateLimit paces successive outbound requests (requests/second).
	DefaultRateLimit = 4
)

const (
	// DefaultFilePerm is the permission used when writing report files.
	DefaultFilePerm = 0o644
)
