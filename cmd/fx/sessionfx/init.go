package sessionfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelai/internal/api/controllers"
	"travelai/internal/config"
	"travelai/internal/services"
	mem "travelai/pkg/memcache"
	"travelai/pkg/utils"
)

var Module = fx.Provide(
	provideSessionStore,
	provideTokenIssuer,
	ProvideSessionService,
	ProvideSessionController,
)

func provideSessionStore(cfg config.Config) mem.SessionStore {
	return mem.NewSessionStore(cfg.SessionTTL)
}

func provideTokenIssuer(cfg config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTokenTTL)
}

func ProvideSessionService(
	store mem.SessionStore,
	issuer *utils.TokenIssuer,
	cfg config.Config,
	logger *zap.SugaredLogger,
) services.SessionServiceInterface {
	return services.NewSessionService(store, issuer, cfg.StrictProfileValidation, logger)
}

func ProvideSessionController(sessionService services.SessionServiceInterface) *controllers.SessionController {
	return controllers.NewSessionController(sessionService)
}
