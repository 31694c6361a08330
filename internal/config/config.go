package config

// Config holds runtime configuration for the ranker.
type Config struct {
	Provider   string
	LogLevel   string
	LogFormat  string
	StatsAPI   StatsAPIConfig
	Retry      RetryConfig
	Scoring    ScoringConfig
	Enrichment EnrichmentConfig
	Snapshots  SnapshotsConfig
	Telemetry  TelemetryConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:   envOrDefault(envProvider, defaultProvider),
		LogLevel:   envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:  envOrDefault(envLogFormat, defaultLogFormat),
		StatsAPI:   loadStatsAPI(),
		Retry:      loadRetry(),
		Scoring:    loadScoring(),
		Enrichment: loadEnrichment(),
		Snapshots:  loadSnapshots(),
		Telemetry:  loadTelemetry(),
	}
}
