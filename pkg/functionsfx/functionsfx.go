// functionsfx/functionsfx.go
package functionsfx

import (
	"github.com/joeydtaylor/steeze-functions/pkg/functions"
	"github.com/joeydtaylor/steeze-functions/pkg/logging"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideRegistry builds the shared registry the setup phase populates and
// the dispatch layer resolves against.
func ProvideRegistry(log *zap.Logger) *functions.Registry {
	return functions.New(functions.WithLogger(log))
}

// Module provided to fx
var Module = fx.Options(
	logging.Module,
	fx.Provide(ProvideRegistry),
)
