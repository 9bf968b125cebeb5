package handlers

import (
	"net/http"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/services"
)

type StandingsHandler struct {
	standingsService *services.StandingsService
}

func NewStandingsHandler(ss *services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: ss}
}

// Register godoc
// @Summary Register a team in a league
// @Tags standings
// @Accept json
// @Produce json
// @Param leagueID path string true "League ID"
// @Param body body object{team_id=string} true "Team to register"
// @Success 201 {object} map[string]interface{} "Created entry"
// @Failure 400 {object} map[string]string "Missing team_id"
// @Failure 409 {object} map[string]string "Team already registered"
// @Router /leagues/{leagueID}/teams [post]
func (h *StandingsHandler) Register(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getParamFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		TeamID string `json:"team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.standingsService.Register(r.Context(), leagueID, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"entry": entry}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByLeague godoc
// @Summary League table in ranking order
// @Tags standings
// @Description Ordered by points desc, goal difference desc, goals scored desc. The
// @Description order is applied at read time; current_position reflects the last recompute.
// @Produce json
// @Param leagueID path string true "League ID"
// @Success 200 {object} map[string]interface{}
// @Router /leagues/{leagueID}/teams [get]
func (h *StandingsHandler) ListByLeague(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getParamFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.standingsService.ListByLeague(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entries": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByTeam godoc
// @Summary League entries of a team across leagues
// @Tags standings
// @Produce json
// @Param teamID path string true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Router /teams/{teamID}/league-entries [get]
func (h *StandingsHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.standingsService.ListByTeam(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entries": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get godoc
// @Summary Get a league entry by ID
// @Tags standings
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /leagues/teams/{entryID} [get]
func (h *StandingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, err := getParamFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.standingsService.Get(r.Context(), entryID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entry": entry}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update godoc
// @Summary Partially update a league entry
// @Tags standings
// @Description Unset fields are left untouched. matches_played is not validated
// @Description against won+drawn+lost; keeping them consistent is the caller's contract.
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param body body models.LeagueEntryUpdate true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated entry"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leagues/teams/{entryID} [put]
func (h *StandingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID, err := getParamFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var update models.LeagueEntryUpdate
	if err := readJSON(w, r, &update); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.standingsService.Update(r.Context(), entryID, update)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entry": entry}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Delete godoc
// @Summary Delete a league entry
// @Tags standings
// @Description Idempotent: deleting an absent entry still returns 204.
// @Param entryID path string true "Entry ID"
// @Success 204
// @Router /leagues/teams/{entryID} [delete]
func (h *StandingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := getParamFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.standingsService.Delete(r.Context(), entryID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteByPair godoc
// @Summary Withdraw a team from a league
// @Tags standings
// @Param leagueID path string true "League ID"
// @Param teamID path string true "Team ID"
// @Success 204
// @Router /leagues/{leagueID}/teams/{teamID} [delete]
func (h *StandingsHandler) DeleteByPair(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getParamFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.standingsService.DeleteByLeagueAndTeam(r.Context(), leagueID, teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecomputePositions godoc
// @Summary Recompute table positions for a league
// @Tags standings
// @Description Reranks active entries and writes 1-based positions in one
// @Description transaction. Idempotent for an unchanged league.
// @Produce json
// @Param leagueID path string true "League ID"
// @Success 200 {object} map[string]interface{} "Reranked entries"
// @Router /leagues/{leagueID}/recompute-positions [post]
func (h *StandingsHandler) RecomputePositions(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getParamFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	ranked, err := h.standingsService.RecomputePositions(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entries": ranked}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Stats godoc
// @Summary Aggregate stats for a league
// @Tags standings
// @Produce json
// @Param leagueID path string true "League ID"
// @Success 200 {object} models.LeagueStats
// @Router /leagues/{leagueID}/stats [get]
func (h *StandingsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getParamFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.standingsService.Stats(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
