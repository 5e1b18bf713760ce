package announcementshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/domain/announcements"
	"jobboard/internal/platform/requestctx"
	"jobboard/internal/transport/http/api"
)

type Handler struct {
	Service *announcements.Service
}

func NewHandler(service *announcements.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/announcements", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/count", h.handleCount)
		r.Post("/", h.handleCreate)
		r.Put("/{announcementID}", h.handleUpdate)
		r.Delete("/{announcementID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.Service.Count(r.Context())
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"count": total}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload announcements.Announcement
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	id, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	announcementID := chi.URLParam(r, "announcementID")

	var payload announcements.Announcement
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.Update(r.Context(), announcementID, payload); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": announcementID}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	announcementID := chi.URLParam(r, "announcementID")
	if err := h.Service.Delete(r.Context(), announcementID); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}
