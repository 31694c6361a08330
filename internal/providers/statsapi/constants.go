package statsapi

import "time"

// ProviderName identifies this upstream in game IDs, logs and metrics.
const ProviderName = "statsapi"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second

	sportID   = "1"
	leagueIDs = "103,104" // AL, NL

	scheduleHydrate = "team,linescore,probablePitcher,lineups"
)
