package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/amina/career-match/internal/types"
)

// handleCreateOpportunity stores a new opportunity in the catalog
func (s *Server) handleCreateOpportunity(w http.ResponseWriter, r *http.Request) {
	var opp types.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&opp); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := opp.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid opportunity: "+err.Error())
		return
	}

	created, err := s.db.CreateOpportunity(r.Context(), opp)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleListOpportunities lists the active catalog
func (s *Server) handleListOpportunities(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", s.catalogLimit, s.catalogLimit)

	opportunities, err := s.db.ListActiveOpportunities(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"opportunities": opportunities,
		"total":         len(opportunities),
		"limit":         limit,
	})
}

// handleGetOpportunity retrieves an opportunity by ID
func (s *Server) handleGetOpportunity(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	oppID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid opportunity ID")
		return
	}

	opp, err := s.db.GetOpportunity(r.Context(), oppID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if opp == nil {
		s.errorResponse(w, http.StatusNotFound, "Opportunity not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, opp)
}

// handleDeactivateOpportunity removes an opportunity from the active catalog
func (s *Server) handleDeactivateOpportunity(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	oppID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid opportunity ID")
		return
	}

	ok, err := s.db.DeactivateOpportunity(r.Context(), oppID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Opportunity not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
