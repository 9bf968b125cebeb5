package handlers

import (
	"net/http"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/services"
)

type TournamentEntryHandler struct {
	entryService *services.TournamentEntryService
}

func NewTournamentEntryHandler(es *services.TournamentEntryService) *TournamentEntryHandler {
	return &TournamentEntryHandler{entryService: es}
}

// Register godoc
// @Summary Register a team for a tournament
// @Tags tournament-entries
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param body body object{team_id=string} true "Team to register"
// @Success 201 {object} map[string]interface{} "Created entry"
// @Failure 400 {object} map[string]string "Missing team_id"
// @Failure 409 {object} map[string]string "Team already registered"
// @Router /tournaments/{tournamentID}/teams [post]
func (h *TournamentEntryHandler) Register(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getParamFromURL(r, "tournamentID")
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

	entry, err := h.entryService.Register(r.Context(), tournamentID, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"entry": entry}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByTournament godoc
// @Summary Tournament entries in display order
// @Tags tournament-entries
// @Description Ordered by seed ascending with unseeded entries last, then by
// @Description registration order. This is display order, not a computed ranking.
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{tournamentID}/teams [get]
func (h *TournamentEntryHandler) ListByTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getParamFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.entryService.ListByTournament(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entries": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByTeam godoc
// @Summary Tournament entries of a team
// @Tags tournament-entries
// @Produce json
// @Param teamID path string true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Router /teams/{teamID}/tournament-entries [get]
func (h *TournamentEntryHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.entryService.ListByTeam(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entries": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get godoc
// @Summary Get a tournament entry by ID
// @Tags tournament-entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /tournaments/teams/{entryID} [get]
func (h *TournamentEntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, err := getParamFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.entryService.Get(r.Context(), entryID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entry": entry}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByPair godoc
// @Summary Get a tournament entry by tournament and team
// @Tags tournament-entries
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param teamID path string true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /tournaments/{tournamentID}/teams/{teamID} [get]
func (h *TournamentEntryHandler) GetByPair(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getParamFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.entryService.GetByTournamentAndTeam(r.Context(), tournamentID, teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entry": entry}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update godoc
// @Summary Partially update a tournament entry
// @Tags tournament-entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param body body models.TournamentEntryUpdate true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated entry"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/teams/{entryID} [put]
func (h *TournamentEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID, err := getParamFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var update models.TournamentEntryUpdate
	if err := readJSON(w, r, &update); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.entryService.Update(r.Context(), entryID, update)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"entry": entry}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Delete godoc
// @Summary Delete a tournament entry
// @Tags tournament-entries
// @Description Idempotent: deleting an absent entry still returns 204.
// @Param entryID path string true "Entry ID"
// @Success 204
// @Router /tournaments/teams/{entryID} [delete]
func (h *TournamentEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := getParamFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.entryService.Delete(r.Context(), entryID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteByPair godoc
// @Summary Withdraw a team from a tournament
// @Tags tournament-entries
// @Param tournamentID path string true "Tournament ID"
// @Param teamID path string true "Team ID"
// @Success 204
// @Router /tournaments/{tournamentID}/teams/{teamID} [delete]
func (h *TournamentEntryHandler) DeleteByPair(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getParamFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.entryService.DeleteByTournamentAndTeam(r.Context(), tournamentID, teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats godoc
// @Summary Entry counts by status for a tournament
// @Tags tournament-entries
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} models.TournamentStats
// @Router /tournaments/{tournamentID}/stats [get]
func (h *TournamentEntryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getParamFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.entryService.Stats(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
