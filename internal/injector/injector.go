//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/cranesim/internal/core/observability/log"
	"github.com/zeusync/cranesim/internal/crane"
	"github.com/zeusync/cranesim/internal/script"
)

func InitializeDriver(cfg crane.Config, logger log.Log) (*script.Driver, error) {
	wire.Build(SimulatorSet)
	return nil, nil
}
