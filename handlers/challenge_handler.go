package handlers

import (
	"net/http"
	"time"

	"github.com/esportsarena/competition-core/models"
	"github.com/esportsarena/competition-core/services"
)

type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

func NewChallengeHandler(cs *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: cs}
}

// Create godoc
// @Summary Propose a challenge between two teams
// @Tags challenges
// @Accept json
// @Produce json
// @Param body body services.CreateChallengeInput true "Challenge proposal"
// @Success 201 {object} map[string]interface{} "Created challenge"
// @Failure 400 {object} map[string]string "Self-challenge or missing team ids"
// @Failure 409 {object} map[string]string "A challenge is already active between the teams"
// @Router /challenges [post]
func (h *ChallengeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateChallengeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	challenge, err := h.challengeService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"challenge": challenge}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get godoc
// @Summary Get a challenge by ID
// @Tags challenges
// @Produce json
// @Param challengeID path string true "Challenge ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /challenges/{challengeID} [get]
func (h *ChallengeHandler) Get(w http.ResponseWriter, r *http.Request) {
	challengeID, err := getParamFromURL(r, "challengeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	challenge, err := h.challengeService.GetByID(r.Context(), challengeID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"challenge": challenge}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByTeam godoc
// @Summary Challenges involving a team, newest first
// @Tags challenges
// @Produce json
// @Param teamID path string true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Router /challenges/team/{teamID} [get]
func (h *ChallengeHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	challenges, err := h.challengeService.ListByTeam(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"challenges": challenges}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetStatus godoc
// @Summary Transition a challenge to a new status
// @Tags challenges
// @Description Allowed transitions: pending to accepted, rejected or cancelled;
// @Description accepted to completed or cancelled. Anything else is rejected.
// @Accept json
// @Produce json
// @Param challengeID path string true "Challenge ID"
// @Param body body object{status=string} true "New status"
// @Success 200 {object} map[string]interface{} "Updated challenge"
// @Failure 400 {object} map[string]string "Unknown status value"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Illegal transition"
// @Router /challenges/{challengeID}/status [patch]
func (h *ChallengeHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	challengeID, err := getParamFromURL(r, "challengeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Status models.ChallengeStatus `json:"status"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	challenge, err := h.challengeService.SetStatus(r.Context(), challengeID, input.Status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"challenge": challenge}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetScheduledDate godoc
// @Summary Set or clear a challenge's scheduled date
// @Tags challenges
// @Description Allowed at any status; a null date clears the schedule.
// @Accept json
// @Produce json
// @Param challengeID path string true "Challenge ID"
// @Param body body object{scheduled_date=string} true "Scheduled date or null"
// @Success 200 {object} map[string]interface{} "Updated challenge"
// @Failure 404 {object} map[string]string
// @Router /challenges/{challengeID}/scheduled-date [patch]
func (h *ChallengeHandler) SetScheduledDate(w http.ResponseWriter, r *http.Request) {
	challengeID, err := getParamFromURL(r, "challengeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		ScheduledDate *time.Time `json:"scheduled_date"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	challenge, err := h.challengeService.SetScheduledDate(r.Context(), challengeID, input.ScheduledDate)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"challenge": challenge}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Delete godoc
// @Summary Delete a challenge
// @Tags challenges
// @Produce json
// @Param challengeID path string true "Challenge ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /challenges/{challengeID} [delete]
func (h *ChallengeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	challengeID, err := getParamFromURL(r, "challengeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.challengeService.Delete(r.Context(), challengeID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "challenge deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
