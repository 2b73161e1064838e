package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// Log godoc
// @Summary Log a training session
// @Description Consume one session from the oldest matching purchase
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest true "Session payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [post]
func (s *SessionController) Log(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := s.sessionService.LogSession(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Session logged")
}

// History godoc
// @Summary Session history
// @Description Sessions visible to the caller, optionally bounded by start/end (RFC3339)
// @Tags Sessions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [get]
func (s *SessionController) History(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	start, end, err := utils.ParseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start/end timestamp")
		return
	}

	resp, err := s.sessionService.History(c.Request.Context(), accountID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

func (s *SessionController) Update(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := s.sessionService.UpdateSession(c.Request.Context(), accountID, sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Session updated")
}

func (s *SessionController) Delete(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.sessionService.DeleteSession(c.Request.Context(), accountID, sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Session deleted")
}
