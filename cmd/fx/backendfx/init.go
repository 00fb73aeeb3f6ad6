package backendfx

import (
	"go.uber.org/fx"

	"travelai/internal/config"
	"travelai/pkg/utils"
)

var Module = fx.Provide(ProvideBackendClient)

// ProvideBackendClient wires the external AI/analytics backend with the
// configured base URL and the per-endpoint timeouts (45s chat, 15s topics
// by default).
func ProvideBackendClient(cfg config.Config) utils.BackendClientInterface {
	return utils.NewBackendClient(cfg.BackendBaseURL, cfg.BackendChatTimeout, cfg.BackendTopicsTimeout)
}
