package storyserviceimpl

import (
	"github.com/soccervitae/soccerapp/internal/storyservice"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(storyservice.Client)),
	),
)
