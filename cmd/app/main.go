package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelai/cmd/fx/backendfx"
	"travelai/cmd/fx/chatfx"
	"travelai/cmd/fx/dashboardfx"
	"travelai/cmd/fx/sessionfx"
	"travelai/internal/api/controllers"
	"travelai/internal/config"
	"travelai/pkg/logger"
	"travelai/pkg/middleware"
	"travelai/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(ProvideLogger),

		backendfx.Module,
		sessionfx.Module,
		chatfx.Module,
		dashboardfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger(cfg config.Config) *zap.SugaredLogger {
	return logger.New(cfg.LogFile, cfg.IsProd()).Sugar()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Infow("starting HTTP server", "port", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Fatalw("failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Infow("stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	issuer *utils.TokenIssuer,
	sessionController *controllers.SessionController,
	chatController *controllers.ChatController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, issuer, sessionController, chatController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	issuer *utils.TokenIssuer,
	sessionController *controllers.SessionController,
	chatController *controllers.ChatController,
	dashboardController *controllers.DashboardController) {

	r.POST("/sessions", sessionController.CreateSessionHandler)

	chatGroup := r.Group("/chat")
	chatGroup.Use(middleware.SessionAuthMiddleware(issuer))
	chatGroup.GET("/history", chatController.GetHistoryHandler)
	chatGroup.POST("/messages", chatController.SubmitMessageHandler)
	chatGroup.POST("/regenerate", chatController.RegenerateHandler)
	chatGroup.POST("/clear", chatController.ClearChatHandler)
	chatGroup.POST("/reset", chatController.ResetSessionHandler)
	chatGroup.GET("/export", chatController.ExportHandler)
	chatGroup.PUT("/profile", chatController.UpdateProfileHandler)
	chatGroup.POST("/profile/reset-trip", chatController.ResetTripFieldsHandler)
	chatGroup.GET("/prompts", chatController.GetPromptIdeasHandler)
	chatGroup.POST("/prompts/shuffle", chatController.ShufflePromptsHandler)

	dashboardGroup := r.Group("/dashboard")
	dashboardGroup.GET("/reviews", dashboardController.ListReviewsHandler)
	dashboardGroup.GET("/summary", dashboardController.GetSummaryHandler)
}
