package chatfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelai/internal/api/controllers"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

var Module = fx.Provide(
	ProvidePromptService,
	ProvideChatService,
	ProvideChatController,
)

func ProvidePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func ProvideChatService(
	promptService services.PromptServiceInterface,
	backend utils.BackendClientInterface,
	logger *zap.SugaredLogger,
) services.ChatServiceInterface {
	return services.NewChatService(promptService, backend, logger)
}

func ProvideChatController(
	sessionService services.SessionServiceInterface,
	chatService services.ChatServiceInterface,
	promptService services.PromptServiceInterface,
) *controllers.ChatController {
	return controllers.NewChatController(sessionService, chatService, promptService)
}
