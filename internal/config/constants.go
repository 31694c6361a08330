package config

import "time"

const (
	envProvider  = "PROVIDER"
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultProvider  = "statsapi"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	envStatsAPIBaseURL = "STATSAPI_BASE_URL"
	envRequestTimeout  = "STATSAPI_TIMEOUT"
	envRateInterval    = "STATSAPI_RATE_INTERVAL"

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com/api/v1"
	// Generous timeout; the schedule hydrate payload can run to a few MB.
	defaultRequestTimeout = 15 * Duration(time.Second)
	// Minimum spacing between upstream calls. The stats API is unmetered
	// but unauthenticated, so stay polite.
	defaultRateInterval = 200 * Duration(time.Millisecond)

	envRetryAttempts = "RETRY_MAX_ATTEMPTS"
	envRetryBackoff  = "RETRY_INITIAL_BACKOFF"

	defaultRetryAttempts = 3
	defaultRetryBackoff  = 500 * Duration(time.Millisecond)

	envFactorFile    = "SCORING_FACTOR_FILE"
	envRivalryFile   = "RIVALRY_FILE"
	envEnrichWorkers = "ENRICH_CONCURRENCY"

	defaultEnrichWorkers = 4

	envSnapshotDir  = "SNAPSHOT_DIR"
	envSnapshotDays = "SNAPSHOT_RETENTION_DAYS"

	defaultSnapshotDir  = "data"
	defaultSnapshotDays = 14

	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultServiceName = "gameday-ranker"
)
