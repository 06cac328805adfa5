package app

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/client"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/config"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/logger"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/mockapi"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/observability"
	httpserver "github.com/zahid1995j/Somahar-Order-Management-App/internal/server/http"
	transporthttp "github.com/zahid1995j/Somahar-Order-Management-App/internal/transport/http"
)

// newDispatcher selects the request backend once, at construction time:
// the mock responder when mock mode is on, the HTTP dispatcher otherwise.
func newDispatcher(cfg config.Config, log *zap.Logger) client.Dispatcher {
	if cfg.Mock.Enabled {
		log.Info("mock mode enabled; serving synthetic data",
			zap.Int("orders", cfg.Mock.Orders),
			zap.Duration("latency", cfg.Mock.Latency),
		)
		return mockapi.NewResponder(cfg.Mock, log)
	}
	return client.NewHTTPDispatcher(cfg.API, log)
}

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	logger.Module,
	observability.Module,
	fx.Provide(newDispatcher),
	client.Module,
)

// MockServer wires the offline mock API server on top of the core modules.
var MockServer = fx.Options(
	Core,
	mockapi.Module,
	httpserver.Module,
	transporthttp.Module,
)

// Module is the default application wiring (mock API server).
var Module = MockServer
