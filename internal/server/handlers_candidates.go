package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/amina/career-match/internal/types"
)

// createCandidateRequest is the body for POST /candidates
type createCandidateRequest struct {
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	FieldOfStudy string                 `json:"field_of_study"`
	Skills       []types.CandidateSkill `json:"skills,omitempty"`
}

// handleCreateCandidate registers a candidate, optionally with an
// initial skill list
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Candidate name is required")
		return
	}

	if len(req.Skills) > 0 {
		profile := types.CandidateProfile{Skills: req.Skills, FieldOfStudy: req.FieldOfStudy}
		if err := profile.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid skills: "+err.Error())
			return
		}
	}

	candidate, err := s.db.CreateCandidate(r.Context(), req.Name, req.Email, req.FieldOfStudy)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if len(req.Skills) > 0 {
		if err := s.db.ReplaceSkills(r.Context(), candidate.ID, req.Skills); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusCreated, candidate)
}

// handleGetCandidate retrieves a candidate with their skills
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	skills, err := s.db.ListSkills(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate": candidate,
		"skills":    skills,
	})
}

// handleReplaceSkills replaces a candidate's full skill list
func (s *Server) handleReplaceSkills(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	candidateID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var skills []types.CandidateSkill
	if err := json.NewDecoder(r.Body).Decode(&skills); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	profile := types.CandidateProfile{Skills: skills}
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skills: "+err.Error())
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	if err := s.db.ReplaceSkills(r.Context(), candidateID, skills); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": candidateID,
		"skills":       skills,
	})
}
