package storyserviceimpl

import (
	"time"

	"github.com/soccervitae/soccerapp/internal/repositories/like"
	"github.com/soccervitae/soccerapp/internal/repositories/reply"
	"github.com/soccervitae/soccerapp/internal/repositories/story"
	"github.com/soccervitae/soccerapp/internal/repositories/view"
	"github.com/soccervitae/soccerapp/internal/storyservice"
	"github.com/soccervitae/soccerapp/pkg/config"
	"github.com/soccervitae/soccerapp/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	StoryRepo story.Repository
	ViewRepo  view.Repository
	LikeRepo  like.Repository
	ReplyRepo reply.Repository
	Logger    logger.Logger
	Config    *config.Config
}

type StoryServiceImpl struct {
	StoryRepo story.Repository
	ViewRepo  view.Repository
	LikeRepo  like.Repository
	ReplyRepo reply.Repository
	Logger    logger.Logger
	TTL       time.Duration
	Now       func() time.Time
}

func New(opts Opts) *StoryServiceImpl {
	return &StoryServiceImpl{
		StoryRepo: opts.StoryRepo,
		ViewRepo:  opts.ViewRepo,
		LikeRepo:  opts.LikeRepo,
		ReplyRepo: opts.ReplyRepo,
		Logger:    opts.Logger.WithComponent("StoryService"),
		TTL:       opts.Config.Expiry.TTL,
		Now:       time.Now,
	}
}

var _ storyservice.Client = (*StoryServiceImpl)(nil)
