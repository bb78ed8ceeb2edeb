package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/soccervitae/soccerapp/internal/storyservice"
	"github.com/soccervitae/soccerapp/internal/viewer"
	"github.com/soccervitae/soccerapp/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Stories storyservice.Client
	Viewer  viewer.Client
	Logger  logger.Logger
}

// Handler exposes the story feed and the story viewer over HTTP.
type Handler struct {
	stories storyservice.Client
	viewer  viewer.Client
	logger  logger.Logger
}

func NewHandler(opts Opts) *Handler {
	return &Handler{
		stories: opts.Stories,
		viewer:  opts.Viewer,
		logger:  opts.Logger.WithComponent("API"),
	}
}

// Routes returns the root router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/stories", h.storyRoutes())
		r.Mount("/viewer", h.viewerRoutes())
	})

	return r
}

func (h *Handler) storyRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListStories)
	r.Get("/{id}/like", h.LikeStatus)
	r.Get("/{id}/footer", h.Footer)

	return r
}

func (h *Handler) viewerRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Snapshot)
	r.Post("/open", h.Open)
	r.Post("/close", h.Close)
	r.Post("/refresh", h.Refresh)

	r.Post("/advance", h.Advance)
	r.Post("/retreat", h.Retreat)
	r.Post("/jump", h.Jump)

	r.Post("/pause/{reason}", h.AddPause)
	r.Delete("/pause/{reason}", h.RemovePause)

	r.Post("/drag/start", h.BeginDrag)
	r.Post("/drag/move", h.MoveDrag)
	r.Post("/drag/end", h.EndDrag)

	r.Put("/draft", h.SetDraft)
	r.Post("/like", h.ToggleLike)
	r.Post("/reply", h.SendReply)
	r.Post("/delete", h.DeleteStory)

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}
