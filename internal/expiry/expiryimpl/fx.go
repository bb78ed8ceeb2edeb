package expiryimpl

import (
	"github.com/soccervitae/soccerapp/internal/expiry"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(expiry.Client)),
	),
)
