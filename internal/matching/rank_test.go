package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amina/career-match/internal/types"
)

func TestRank_SortsByDescendingScore(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:       []types.CandidateSkill{{Name: "React", Level: 5, Verified: true}},
		FieldOfStudy: "Computer Science",
	}
	opportunities := []types.Opportunity{
		{Title: "Unrelated", RequiredSkills: []string{"Quantum Mechanics"}},
		{Title: "Perfect Fit", RequiredSkills: []string{"React"}, Sector: strPtr("Technology")},
		{Title: "Unscoreable"},
	}

	results := Rank(profile, opportunities)

	require.Len(t, results, 3)
	assert.Equal(t, "Perfect Fit", results[0].Opportunity.Title)
	assert.Equal(t, "Unscoreable", results[1].Opportunity.Title)
	assert.Equal(t, "Unrelated", results[2].Opportunity.Title)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
	}
}

func TestRank_EqualScoresKeepInputOrder(t *testing.T) {
	profile := &types.CandidateProfile{}
	opportunities := []types.Opportunity{
		{Title: "First"},
		{Title: "Second"},
		{Title: "Third"},
	}

	results := Rank(profile, opportunities)

	require.Len(t, results, 3)
	assert.Equal(t, results[0].MatchScore, results[1].MatchScore)
	assert.Equal(t, "First", results[0].Opportunity.Title)
	assert.Equal(t, "Second", results[1].Opportunity.Title)
	assert.Equal(t, "Third", results[2].Opportunity.Title)
}

func TestRank_EmptyCatalog(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills: []types.CandidateSkill{{Name: "Go", Level: 3}},
	}

	results := Rank(profile, nil)

	assert.Empty(t, results)
}

func TestRank_LargeCatalogStaysOrderedAndComplete(t *testing.T) {
	// Scoring fans out across goroutines; every opportunity must come back
	// exactly once, still sorted.
	profile := &types.CandidateProfile{
		Skills:       []types.CandidateSkill{{Name: "SQL", Level: 4}},
		FieldOfStudy: "Economics",
	}

	var opportunities []types.Opportunity
	for i := 0; i < 200; i++ {
		opp := types.Opportunity{Title: fmt.Sprintf("opp-%d", i)}
		if i%3 == 0 {
			opp.RequiredSkills = []string{"SQL"}
		}
		if i%5 == 0 {
			opp.Sector = strPtr("Banking")
		}
		opportunities = append(opportunities, opp)
	}

	results := Rank(profile, opportunities)

	require.Len(t, results, 200)
	seen := make(map[string]bool)
	for i, r := range results {
		assert.False(t, seen[r.Opportunity.Title])
		seen[r.Opportunity.Title] = true
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].MatchScore, r.MatchScore)
		}
	}
}
