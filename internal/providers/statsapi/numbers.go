package statsapi

import (
	"strconv"
	"strings"
)

// ParseRank parses a rank string ("1", "2", ...). Returns 0 when the
// value is missing or not numeric.
func ParseRank(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseGamesBack parses a games-back string. Leaders report "-", which
// normalizes to 0.
func ParseGamesBack(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseEliminationNumber parses an elimination number. Non-numeric
// values ("-" for leaders, "E" once eliminated) return -1.
func ParseEliminationNumber(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return -1
	}
	return v
}

// ParseInningsPitched parses an innings-pitched string such as "181.2",
// where the fractional digit counts thirds of an inning.
func ParseInningsPitched(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	whole, frac, found := strings.Cut(raw, ".")
	full, err := strconv.ParseFloat(whole, 64)
	if err != nil || full < 0 {
		return 0
	}
	if !found {
		return full
	}
	outs, err := strconv.Atoi(frac)
	if err != nil || outs < 0 || outs > 2 {
		return full
	}
	return full + float64(outs)/3
}
