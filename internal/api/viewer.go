package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soccervitae/soccerapp/internal/replay"
	"github.com/soccervitae/soccerapp/internal/viewer"
	"github.com/soccervitae/soccerapp/pkg/response"
)

func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	sessionLog := h.logger.With("viewer_id", req.ViewerID)
	res, err := h.viewer.Open(r.Context(), viewer.OpenRequest{
		ViewerID:          req.ViewerID,
		InitialGroupIndex: req.InitialGroupIndex,
		Origin:            req.Origin,
		Viewport:          req.Viewport,
		OnClose: func(reason replay.CloseReason) {
			sessionLog.Info("Viewer dismissed", "reason", reason)
		},
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, res)
}

func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.viewer.Close(r.Context()))
}

func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.viewer.Snapshot(r.Context()))
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.viewer.Refresh(r.Context()))
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.viewer.Advance(r.Context()))
}

func (h *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.viewer.Retreat(r.Context()))
}

func (h *Handler) Jump(w http.ResponseWriter, r *http.Request) {
	var req JumpRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, r)(h.viewer.JumpToStory(r.Context(), req.Index))
}

func (h *Handler) AddPause(w http.ResponseWriter, r *http.Request) {
	reason, ok := h.reason(w, r)
	if !ok {
		return
	}
	h.respond(w, r)(h.viewer.AddPauseReason(r.Context(), reason))
}

func (h *Handler) RemovePause(w http.ResponseWriter, r *http.Request) {
	reason, ok := h.reason(w, r)
	if !ok {
		return
	}
	h.respond(w, r)(h.viewer.RemovePauseReason(r.Context(), reason))
}

func (h *Handler) BeginDrag(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.viewer.BeginDrag(r.Context()))
}

func (h *Handler) MoveDrag(w http.ResponseWriter, r *http.Request) {
	var req DragMoveRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, r)(h.viewer.MoveDrag(r.Context(), req.Translation))
}

func (h *Handler) EndDrag(w http.ResponseWriter, r *http.Request) {
	var req DragEndRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.viewer.EndDrag(r.Context(), req.Translation, req.Velocity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, res)
}

func (h *Handler) SetDraft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, r)(h.viewer.SetDraft(r.Context(), req.Text))
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	var req LikeRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, r)(h.viewer.ToggleLike(r.Context(), req.WasLiked))
}

func (h *Handler) SendReply(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.viewer.SendReply(r.Context()))
}

func (h *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.viewer.DeleteStory(r.Context()))
}

// respond writes a snapshot or maps the error.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request) func(replay.Snapshot, error) {
	return func(snap replay.Snapshot, err error) {
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		response.JSON(w, http.StatusOK, snap)
	}
}

func (h *Handler) reason(w http.ResponseWriter, r *http.Request) (replay.Reason, bool) {
	reason, err := replay.ParseReason(chi.URLParam(r, "reason"))
	if err != nil {
		h.writeError(w, r, err)
		return 0, false
	}
	return reason, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	return true
}
