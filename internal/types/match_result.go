package types

// PartialMatch annotates a required skill whose best candidate match was
// imperfect (similarity below 1.0 but at least 0.4).
type PartialMatch struct {
	CandidateSkill string  `json:"candidate_skill"`
	RequiredSkill  string  `json:"required_skill"`
	Similarity     float64 `json:"similarity"`
}

// MatchResult is the scored outcome for one candidate/opportunity pair.
//
// MatchingSkills holds required skills whose best similarity was at least
// 0.75; MissingSkills holds those below 0.4. PartialMatches is an overlay
// annotation: it carries the mid-band matches and the near-misses of strong
// matches, not a third partition.
type MatchResult struct {
	Opportunity    Opportunity    `json:"opportunity"`
	MatchScore     int            `json:"match_score"`
	MatchingSkills []string       `json:"matching_skills"`
	MissingSkills  []string       `json:"missing_skills"`
	PartialMatches []PartialMatch `json:"partial_matches"`
	MatchReasons   []string       `json:"match_reasons"`
	FieldAlignment float64        `json:"field_alignment"`
}
