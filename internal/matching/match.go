package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/amina/career-match/internal/types"
)

// Classification thresholds and aggregation weights. The +10 base credit
// and the 50 neutral skill score are tunable product constants; they keep
// a fully mismatched candidate from ever seeing a zero, which would imply
// the opportunity itself is invalid.
const (
	strongMatchThreshold  = 0.75
	partialMatchThreshold = 0.4

	skillScoreWeight = 0.6
	fieldWeight      = 0.3
	baseCredit       = 10.0

	neutralSkillScore = 50.0

	baseContribution    = 0.7
	levelContribution   = 0.3
	verifiedBonus       = 0.1
	partialContribution = 0.3

	maxSkillLevel = 5.0

	maxListedSkills = 3
)

// bestMatch records the candidate skill closest to one required skill.
type bestMatch struct {
	skill      types.CandidateSkill
	similarity float64
}

// CalculateMatch scores one candidate profile against one opportunity and
// classifies every required skill as matching, partial, or missing. It
// raises no errors under any input shape: empty collections and
// unnormalizable strings degrade to documented defaults.
func CalculateMatch(profile *types.CandidateProfile, opportunity types.Opportunity) types.MatchResult {
	normalized := make([]string, len(profile.Skills))
	for i, s := range profile.Skills {
		normalized[i] = Normalize(s.Name)
	}

	result := types.MatchResult{
		Opportunity:    opportunity,
		MatchingSkills: []string{},
		MissingSkills:  []string{},
		PartialMatches: []types.PartialMatch{},
	}

	skillMatchScore := 0.0
	for _, required := range opportunity.RequiredSkills {
		best := findBestMatch(profile.Skills, normalized, Normalize(required))

		switch {
		case best.similarity >= strongMatchThreshold:
			result.MatchingSkills = append(result.MatchingSkills, required)
			levelWeight := float64(best.skill.Level) / maxSkillLevel
			contribution := baseContribution + levelContribution*levelWeight
			if best.skill.Verified {
				contribution += verifiedBonus
			}
			skillMatchScore += contribution * best.similarity
			if best.similarity < 1.0 {
				// Strong but imperfect: surface the near-miss as well.
				result.PartialMatches = append(result.PartialMatches, types.PartialMatch{
					CandidateSkill: best.skill.Name,
					RequiredSkill:  required,
					Similarity:     best.similarity,
				})
			}
		case best.similarity >= partialMatchThreshold:
			result.PartialMatches = append(result.PartialMatches, types.PartialMatch{
				CandidateSkill: best.skill.Name,
				RequiredSkill:  required,
				Similarity:     best.similarity,
			})
			skillMatchScore += partialContribution * best.similarity
		default:
			result.MissingSkills = append(result.MissingSkills, required)
		}
	}

	// An opportunity with no required skills is unscoreable; it gets the
	// neutral default instead of an error.
	skillScore := neutralSkillScore
	if len(opportunity.RequiredSkills) > 0 {
		skillScore = skillMatchScore / float64(len(opportunity.RequiredSkills)) * 100
	}

	result.FieldAlignment = FieldAlignment(profile.FieldOfStudy, opportunity.SectorOrDepartment())

	final := skillScore*skillScoreWeight + result.FieldAlignment*100*fieldWeight + baseCredit
	result.MatchScore = int(math.Round(clamp(final, 0, 100)))

	result.MatchReasons = buildReasons(&result)
	return result
}

// findBestMatch keeps the single candidate skill with the highest
// similarity against the required skill. Ties keep the first-seen skill;
// profile order is significant.
func findBestMatch(skills []types.CandidateSkill, normalized []string, required string) bestMatch {
	var best bestMatch
	for i, candidate := range normalized {
		if sim := Similarity(required, candidate); sim > best.similarity {
			best = bestMatch{skill: skills[i], similarity: sim}
		}
	}
	return best
}

// buildReasons produces the ordered human-readable explanation: field
// alignment note, matched-skills summary, related-skills note when there
// are only partial matches, and a skills-gap note.
func buildReasons(result *types.MatchResult) []string {
	reasons := []string{}

	switch result.FieldAlignment {
	case fullAlignment:
		reasons = append(reasons, "Your field of study aligns with this opportunity's sector")
	case partialAlignment:
		reasons = append(reasons, "Your field of study is related to this opportunity's sector")
	}

	if n := len(result.MatchingSkills); n > 0 {
		listed := result.MatchingSkills
		if n > maxListedSkills {
			listed = listed[:maxListedSkills]
		}
		summary := "Matched skills: " + strings.Join(listed, ", ")
		if extra := n - maxListedSkills; extra > 0 {
			summary += fmt.Sprintf(" +%d more", extra)
		}
		reasons = append(reasons, summary)
	}

	if len(result.PartialMatches) > 0 && len(result.MatchingSkills) == 0 {
		reasons = append(reasons, fmt.Sprintf("You have %d related skills for this role", len(result.PartialMatches)))
	}

	if n := len(result.MissingSkills); n > 0 {
		if n <= maxListedSkills {
			reasons = append(reasons, "Skills to develop: "+strings.Join(result.MissingSkills, ", "))
		} else {
			reasons = append(reasons, fmt.Sprintf("%d required skills to develop", n))
		}
	}

	return reasons
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
