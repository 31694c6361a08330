package config

// StatsAPIConfig controls how we talk to the MLB stats API.
type StatsAPIConfig struct {
	BaseURL      string
	Timeout      Duration
	RateInterval Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:      envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		Timeout:      durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
		RateInterval: durationEnvOrDefault(envRateInterval, defaultRateInterval),
	}
}

// RetryConfig controls the retry decorator around the provider.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff Duration
}

func loadRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts:    intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		InitialBackoff: durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}

// ScoringConfig points at optional factor and rivalry override files.
type ScoringConfig struct {
	FactorFile  string
	RivalryFile string
}

func loadScoring() ScoringConfig {
	return ScoringConfig{
		FactorFile:  envOrDefault(envFactorFile, ""),
		RivalryFile: envOrDefault(envRivalryFile, ""),
	}
}

// EnrichmentConfig bounds the enrichment fan-out.
type EnrichmentConfig struct {
	Concurrency int
}

func loadEnrichment() EnrichmentConfig {
	return EnrichmentConfig{
		Concurrency: intEnvOrDefault(envEnrichWorkers, defaultEnrichWorkers),
	}
}

// SnapshotsConfig controls where ranked days are written and for how
// long they are kept.
type SnapshotsConfig struct {
	Dir           string
	RetentionDays int
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
	}
}

// TelemetryConfig controls the metrics exporters.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadTelemetry() TelemetryConfig {
	return TelemetryConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
