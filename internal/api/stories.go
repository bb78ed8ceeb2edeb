package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soccervitae/soccerapp/internal/domain"
	"github.com/soccervitae/soccerapp/pkg/formatter"
	"github.com/soccervitae/soccerapp/pkg/response"
)

// ListStories handles GET /api/v1/stories?viewer_id=
func (h *Handler) ListStories(w http.ResponseWriter, r *http.Request) {
	groups, err := h.stories.FetchGroupedStories(r.Context(), r.URL.Query().Get("viewer_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if groups == nil {
		groups = []domain.StoryGroup{}
	}
	response.JSON(w, http.StatusOK, groups)
}

// LikeStatus handles GET /api/v1/stories/{id}/like?viewer_id=
func (h *Handler) LikeStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	liked, err := h.stories.FetchLikeStatus(r.Context(), id, r.URL.Query().Get("viewer_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, LikeStatusResponse{StoryID: id, Liked: liked})
}

// Footer handles GET /api/v1/stories/{id}/footer
func (h *Handler) Footer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	views, err := h.stories.FetchViewerCount(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	replies, err := h.stories.FetchReplyCount(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, FooterResponse{
		StoryID:     id,
		ViewerCount: views,
		ReplyCount:  replies,
		Views:       formatter.CountLabel(views, "view", "views"),
		Replies:     formatter.CountLabel(replies, "reply", "replies"),
	})
}
