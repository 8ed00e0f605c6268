package matching

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/amina/career-match/internal/types"
)

// Rank scores every opportunity in the catalog against the profile and
// returns the results sorted by descending match score. Scoring is fanned
// out per opportunity: each invocation reads only the shared read-only
// profile and the static tables, so no coordination is needed. Equal
// scores keep their relative input order; ties are not broken by any
// secondary key.
func Rank(profile *types.CandidateProfile, opportunities []types.Opportunity) []types.MatchResult {
	results := make([]types.MatchResult, len(opportunities))

	var g errgroup.Group
	for i, opportunity := range opportunities {
		g.Go(func() error {
			results[i] = CalculateMatch(profile, opportunity)
			return nil
		})
	}
	// CalculateMatch cannot fail, so the group never returns an error.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}
