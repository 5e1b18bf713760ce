package employershandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/domain/employers"
	"jobboard/internal/platform/requestctx"
	"jobboard/internal/transport/http/api"
	"jobboard/internal/transport/http/middleware"
)

type Handler struct {
	Store employers.StoreAPI
}

func NewHandler(store employers.StoreAPI) *Handler {
	return &Handler{Store: store}
}

// RegisterAdminRoutes serves the manage-accounts table: list employer
// accounts and delete them.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Delete("/{employerUID}", h.handleDelete)
	})
}

// RegisterEmployerRoutes serves the employer's own profile.
func (h *Handler) RegisterEmployerRoutes(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.handleGetProfile)
		r.Put("/", h.handleUpdateProfile)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.List(r.Context())
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	employerUID := chi.URLParam(r, "employerUID")
	if err := h.Store.Delete(r.Context(), employerUID); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	employer, err := h.Store.GetByUID(r.Context(), user.UID)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employer, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	var payload employers.Employer
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.UpdateProfile(r.Context(), user.UID, payload); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}

	// Return the stored row so the console can refresh its cached
	// session record in one round trip.
	updated, err := h.Store.GetByUID(r.Context(), user.UID)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, requestctx.GetRequestID(r.Context()))
}
