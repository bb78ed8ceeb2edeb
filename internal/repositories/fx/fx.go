package fx

import (
	"github.com/soccervitae/soccerapp/internal/repositories/like"
	"github.com/soccervitae/soccerapp/internal/repositories/reply"
	"github.com/soccervitae/soccerapp/internal/repositories/story"
	"github.com/soccervitae/soccerapp/internal/repositories/view"
	"go.uber.org/fx"
)

var Module = fx.Options(
	story.Module,
	view.Module,
	like.Module,
	reply.Module,
)
