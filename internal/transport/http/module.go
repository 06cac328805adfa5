package http

import (
	"go.uber.org/fx"

	orderstransport "github.com/zahid1995j/Somahar-Order-Management-App/internal/transport/http/orders"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	orderstransport.Module,
)
