package logger

import "go.uber.org/fx"

// Module wires zerolog logger for dependency injection.
var Module = fx.Provide(New)
