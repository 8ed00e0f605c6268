package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/amina/career-match/internal/matching"
	"github.com/amina/career-match/internal/types"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// matchRequest is the body for POST /match
type matchRequest struct {
	Profile     types.CandidateProfile `json:"profile"`
	Opportunity types.Opportunity      `json:"opportunity"`
}

// rankRequest is the body for POST /rank
type rankRequest struct {
	Profile       types.CandidateProfile `json:"profile"`
	Opportunities []types.Opportunity    `json:"opportunities"`
}

// handleMatch scores a single profile against a single opportunity
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	if err := req.Profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}
	if err := req.Opportunity.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid opportunity: "+err.Error())
		return
	}

	result := matching.CalculateMatch(&req.Profile, req.Opportunity)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRank scores a profile against a caller-supplied catalog and
// returns results ordered best first
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	if err := req.Profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}
	for i := range req.Opportunities {
		if err := req.Opportunities[i].Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid opportunity at index "+strconv.Itoa(i)+": "+err.Error())
			return
		}
	}

	results := matching.Rank(&req.Profile, req.Opportunities)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"total":   len(results),
	})
}

// handleCandidateMatches ranks the active catalog for a stored candidate
func (s *Server) handleCandidateMatches(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	topN := parseQueryInt(r, "limit", s.topN, s.catalogLimit)

	profile, err := s.db.GetCandidateProfile(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	opportunities, err := s.db.ListActiveOpportunities(r.Context(), s.catalogLimit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	results := matching.Rank(profile, opportunities)
	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": candidateID,
		"results":      results,
		"total":        len(results),
	})
}
