package controllers

import (
	"github.com/gin-gonic/gin"

	"travelai/internal/models/response_models"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// CreateSessionHandler opens a new chat session and hands back the token
// that scopes all /chat routes to it.
func (sc *SessionController) CreateSessionHandler(c *gin.Context) {
	session, token, err := sc.sessionService.CreateSession()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SessionResponse{
		SessionID: session.ID,
		ShortID:   session.ShortID(),
		Token:     token,
		Profile:   session.Profile.Clone(),
	}, "Session created")
}
