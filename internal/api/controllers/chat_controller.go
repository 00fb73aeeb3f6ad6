package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelai/internal/models/domain_models"
	"travelai/internal/models/request_models"
	"travelai/internal/models/response_models"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

type ChatController struct {
	sessionService services.SessionServiceInterface
	chatService    services.ChatServiceInterface
	promptService  services.PromptServiceInterface
}

func NewChatController(
	sessionService services.SessionServiceInterface,
	chatService services.ChatServiceInterface,
	promptService services.PromptServiceInterface,
) *ChatController {
	return &ChatController{
		sessionService: sessionService,
		chatService:    chatService,
		promptService:  promptService,
	}
}

// session resolves the session scoped by the auth middleware.
func (ct *ChatController) session(c *gin.Context) (*domain_models.Session, bool) {
	id := c.GetString("session_id")
	session, err := ct.sessionService.GetSession(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	return session, true
}

func (ct *ChatController) GetHistoryHandler(c *gin.Context) {
	session, ok := ct.session(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, ct.chatService.History(session), "History fetched")
}

// SubmitMessageHandler runs one full conversation turn: the question is
// appended, composed against the trip profile, sent to the backend, and
// the answer (or a failure message) is appended before responding.
func (ct *ChatController) SubmitMessageHandler(c *gin.Context) {
	var req request_models.SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, ok := ct.session(c)
	if !ok {
		return
	}

	turn := ct.chatService.SubmitMessage(c.Request.Context(), session, req.Message)
	if !turn.Dispatched {
		utils.RespondSuccess(c, turn, "Empty message ignored")
		return
	}
	utils.RespondSuccess(c, turn, "Message processed")
}

func (ct *ChatController) RegenerateHandler(c *gin.Context) {
	session, ok := ct.session(c)
	if !ok {
		return
	}

	turn, err := ct.chatService.Regenerate(c.Request.Context(), session)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, turn, "Answer regenerated")
}

func (ct *ChatController) ClearChatHandler(c *gin.Context) {
	session, ok := ct.session(c)
	if !ok {
		return
	}

	ct.chatService.ClearChat(session)
	utils.RespondSuccess(c, ct.chatService.History(session), "Chat cleared")
}

// ResetSessionHandler discards the session entirely and returns a fresh
// identifier and token with everything back at defaults.
func (ct *ChatController) ResetSessionHandler(c *gin.Context) {
	session, ok := ct.session(c)
	if !ok {
		return
	}

	fresh, token, err := ct.sessionService.ResetSession(session)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SessionResponse{
		SessionID: fresh.ID,
		ShortID:   fresh.ShortID(),
		Token:     token,
		Profile:   fresh.Profile.Clone(),
	}, "New session started")
}

func (ct *ChatController) ExportHandler(c *gin.Context) {
	session, ok := ct.session(c)
	if !ok {
		return
	}

	filename, blob, err := ct.sessionService.Export(session)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", blob)
}

func (ct *ChatController) UpdateProfileHandler(c *gin.Context) {
	var req request_models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, ok := ct.session(c)
	if !ok {
		return
	}

	profile, err := ct.sessionService.UpdateProfile(session, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile updated")
}

func (ct *ChatController) ResetTripFieldsHandler(c *gin.Context) {
	session, ok := ct.session(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, ct.sessionService.ResetTripFields(session), "Trip profile reset")
}

func (ct *ChatController) GetPromptIdeasHandler(c *gin.Context) {
	session, ok := ct.session(c)
	if !ok {
		return
	}

	var ideas response_models.PromptIdeas
	session.Do(func() {
		ideas = ct.promptService.Ideas(session.Profile, session.QuickSeed)
	})
	utils.RespondSuccess(c, ideas, "Prompt ideas fetched")
}

func (ct *ChatController) ShufflePromptsHandler(c *gin.Context) {
	session, ok := ct.session(c)
	if !ok {
		return
	}

	seed := ct.sessionService.ShufflePrompts(session)
	var ideas response_models.PromptIdeas
	session.Do(func() {
		ideas = ct.promptService.Ideas(session.Profile, seed)
	})
	utils.RespondSuccess(c, ideas, "Prompts shuffled")
}
