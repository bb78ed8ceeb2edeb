package viewerimpl

import (
	"github.com/soccervitae/soccerapp/internal/viewer"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(viewer.Client)),
	),
)
