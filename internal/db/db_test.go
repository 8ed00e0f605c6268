package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amina/career-match/internal/types"
)

func TestCandidate_JSONRoundTrip(t *testing.T) {
	c := Candidate{
		ID:           uuid.New(),
		Name:         "Amina Diallo",
		Email:        "amina@example.com",
		FieldOfStudy: "Computer Science",
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var got Candidate
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c, got)
}

func TestCandidateProfile_SkillOrderRoundTrip(t *testing.T) {
	// The profile is assembled from skills sorted by position; verify that
	// the slice order survives the types round-trip the handlers rely on.
	skills := []types.CandidateSkill{
		{Name: "Python", Level: 4},
		{Name: "SQL", Level: 3, Verified: true},
		{Name: "Communication", Level: 5},
	}
	profile := types.CandidateProfile{Skills: skills, FieldOfStudy: "Economics"}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var got types.CandidateProfile
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Skills, 3)
	assert.Equal(t, "Python", got.Skills[0].Name)
	assert.Equal(t, "SQL", got.Skills[1].Name)
	assert.Equal(t, "Communication", got.Skills[2].Name)
}
