package domain

// Analytics carries the derived, immutable per-game numbers computed from
// the inning-by-inning scoring sequence at normalization time.
type Analytics struct {
	InningsPlayed        int  `json:"inningsPlayed"`
	ExtraInnings         bool `json:"extraInnings"`
	TotalRuns            int  `json:"totalRuns"`
	RunDifference        int  `json:"runDifference"`
	LeadChanges          int  `json:"leadChanges"`
	LastLeadChangeInning int  `json:"lastLeadChangeInning,omitempty"`
	WalkOff              bool `json:"walkOff"`
	MaxLead              int  `json:"maxLead"`
	MaxLeadSide          Side `json:"maxLeadSide,omitempty"`
	ComebackWin          bool `json:"comebackWin"`
	ComebackSide         Side `json:"comebackSide,omitempty"`
	ScoringInnings       int  `json:"scoringInnings"`
}
