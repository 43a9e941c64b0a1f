package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwaylabs/golfcoach-backend/internal/http/response"
	"github.com/fairwaylabs/golfcoach-backend/internal/services"
)

type CoachHandler struct {
	coachService services.CoachService
}

func NewCoachHandler(coachService services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

func (ch *CoachHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		FocusArea  string `json:"focusArea"`
		AdviceType string `json:"adviceType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rec, err := ch.coachService.Generate(c.Request.Context(), userID, req.FocusArea, req.AdviceType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, rec)
}

func (ch *CoachHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recs, err := ch.coachService.History(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, recs)
}

func (ch *CoachHandler) Latest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rec, err := ch.coachService.Latest(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rec)
}
