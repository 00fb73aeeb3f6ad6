package dashboardfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelai/internal/api/controllers"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

var Module = fx.Provide(
	provideDashboardService,
	provideDashboardController,
)

func provideDashboardService(backend utils.BackendClientInterface, logger *zap.SugaredLogger) services.DashboardServiceInterface {
	return services.NewDashboardService(backend, logger)
}

func provideDashboardController(dashboardService services.DashboardServiceInterface) *controllers.DashboardController {
	return controllers.NewDashboardController(dashboardService)
}
