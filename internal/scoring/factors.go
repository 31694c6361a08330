package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Factor names one excitement scoring factor.
type Factor string

const (
	FactorCloseGame           Factor = "closeGame"
	FactorLeadChanges         Factor = "leadChanges"
	FactorLateGameDrama       Factor = "lateGameDrama"
	FactorComebackWin         Factor = "comebackWin"
	FactorExtraInnings        Factor = "extraInnings"
	FactorHighScoring         Factor = "highScoring"
	FactorTeamRankings        Factor = "teamRankings"
	FactorTotalHits           Factor = "totalHits"
	FactorErrors              Factor = "errors"
	FactorScoringDistribution Factor = "scoringDistribution"
	FactorRivalry             Factor = "rivalry"
	FactorPlayerMilestones    Factor = "playerMilestones"
	FactorSeasonalContext     Factor = "seasonalContext"
)

// factorOrder fixes iteration order so scoring is deterministic.
var factorOrder = []Factor{
	FactorCloseGame,
	FactorLeadChanges,
	FactorLateGameDrama,
	FactorComebackWin,
	FactorExtraInnings,
	FactorHighScoring,
	FactorTeamRankings,
	FactorTotalHits,
	FactorErrors,
	FactorScoringDistribution,
	FactorRivalry,
	FactorPlayerMilestones,
	FactorSeasonalContext,
}

// weights are the fixed relative factor weights. They multiply each
// sub-score and also form the renormalization denominator, so disabling
// factors rescales the rest onto the full 0-100 range.
var weights = map[Factor]float64{
	FactorCloseGame:           20,
	FactorLeadChanges:         15,
	FactorLateGameDrama:       20,
	FactorComebackWin:         10,
	FactorExtraInnings:        10,
	FactorHighScoring:         10,
	FactorTeamRankings:        5,
	FactorTotalHits:           5,
	FactorErrors:              5,
	FactorScoringDistribution: 10,
	FactorRivalry:             10,
	FactorPlayerMilestones:    5,
	FactorSeasonalContext:     5,
}

// FactorSet is the caller's per-factor toggle map. Keys that are not
// known factor names are simply never consulted, so they are ignored. A
// nil set enables everything.
type FactorSet map[Factor]bool

// AllFactors returns a set with every factor enabled.
func AllFactors() FactorSet {
	set := make(FactorSet, len(factorOrder))
	for _, f := range factorOrder {
		set[f] = true
	}
	return set
}

// Enabled reports whether the factor participates in scoring.
func (s FactorSet) Enabled(f Factor) bool {
	if s == nil {
		return true
	}
	return s[f]
}

// Without returns a copy of the set with the named factors disabled.
// Unrecognized names are ignored.
func (s FactorSet) Without(names ...string) FactorSet {
	out := make(FactorSet, len(s))
	for f, on := range s {
		out[f] = on
	}
	for _, name := range names {
		f := Factor(name)
		if _, known := weights[f]; known {
			out[f] = false
		}
	}
	return out
}

// factorFile is the on-disk shape of a factor configuration.
type factorFile struct {
	Disabled []string `yaml:"disabled"`
}

// LoadFactorFile reads a YAML factor configuration listing disabled
// factor names. Unrecognized names are ignored.
func LoadFactorFile(path string) (FactorSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read factor config: %w", err)
	}
	var file factorFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse factor config: %w", err)
	}
	return AllFactors().Without(file.Disabled...), nil
}
