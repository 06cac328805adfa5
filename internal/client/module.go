package client

import "go.uber.org/fx"

// Module provides the order service to Fx. The Dispatcher implementation is
// supplied by the application wiring.
var Module = fx.Provide(NewService)
