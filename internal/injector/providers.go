package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/cranesim/internal/core/events/bus"
	"github.com/zeusync/cranesim/internal/crane"
	"github.com/zeusync/cranesim/internal/script"
)

// SimulatorSet wires a scenario driver around a fresh engine and event bus.
// The logger comes from the caller so a process keeps a single zap core.
var SimulatorSet = wire.NewSet(
	bus.New,
	crane.New,
	script.NewDriver,
)
