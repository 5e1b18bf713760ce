package jobshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/domain/applications"
	"jobboard/internal/domain/employers"
	"jobboard/internal/domain/jobs"
	"jobboard/internal/faults"
	"jobboard/internal/platform/requestctx"
	"jobboard/internal/transport/http/api"
	"jobboard/internal/transport/http/middleware"
)

type Handler struct {
	Jobs         *jobs.Service
	Applications applications.StoreAPI
	Employers    employers.StoreAPI
}

func NewHandler(jobsSvc *jobs.Service, appStore applications.StoreAPI, employerStore employers.StoreAPI) *Handler {
	return &Handler{Jobs: jobsSvc, Applications: appStore, Employers: employerStore}
}

// RegisterAdminRoutes exposes the full jobs table plus per-job
// applicant listings under the admin area.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/count", h.handleCount)
		r.Post("/", h.handleCreate)
		r.Put("/{jobID}", h.handleUpdate)
		r.Post("/{jobID}/toggle", h.handleToggle)
		r.Delete("/{jobID}", h.handleDelete)
		r.Get("/{jobID}/applications", h.handleListApplications)
		r.Get("/{jobID}/applications/count", h.handleCountApplications)
	})
}

// RegisterEmployerRoutes exposes only the caller's own postings and
// requires a complete profile before the first post.
func (h *Handler) RegisterEmployerRoutes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.handleListOwn)
		r.Get("/count", h.handleCountOwn)
		r.Post("/", h.handleCreateOwn)
		r.Put("/{jobID}", h.withOwnJob(h.handleUpdate))
		r.Post("/{jobID}/toggle", h.withOwnJob(h.handleToggle))
		r.Delete("/{jobID}", h.withOwnJob(h.handleDelete))
		r.Get("/{jobID}/applications/count", h.withOwnJob(h.handleCountApplications))
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Jobs.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}
	list, err := h.Jobs.ListByOwner(r.Context(), user.UID)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.Jobs.Count(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"count": total}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCountOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}
	total, err := h.Jobs.CountByOwner(r.Context(), user.UID)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"count": total}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload jobs.Job
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	payload.OwnerEmployerUID = ""

	id, err := h.Jobs.Create(r.Context(), payload)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	employer, err := h.Employers.GetByUID(r.Context(), user.UID)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	if !employer.ProfileComplete() {
		api.Fail(w, http.StatusUnprocessableEntity, "profile_incomplete",
			"please complete your profile before posting a job", requestctx.GetRequestID(r.Context()))
		return
	}

	var payload jobs.Job
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	payload.OwnerEmployerUID = user.UID
	if payload.Company == "" {
		payload.Company = employer.CompanyName
	}
	if payload.Logo == "" {
		payload.Logo = employer.CompanyLogo
	}

	id, err := h.Jobs.Create(r.Context(), payload)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	var payload jobs.Job
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	if err := h.Jobs.Update(r.Context(), jobID, payload); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": jobID}, requestctx.GetRequestID(r.Context()))
}

type toggleRequest struct {
	IsOpen bool `json:"isOpen"`
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	var payload toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	if err := h.Jobs.Toggle(r.Context(), jobID, payload.IsOpen); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"id": jobID, "isOpen": payload.IsOpen}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if err := h.Jobs.Delete(r.Context(), jobID); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	list, err := h.Applications.ListByJob(r.Context(), jobID)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCountApplications(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	total, err := h.Applications.CountByJob(r.Context(), jobID)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"count": total}, requestctx.GetRequestID(r.Context()))
}

// withOwnJob rejects employer mutations against jobs they do not own.
func (h *Handler) withOwnJob(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
			return
		}

		jobID := chi.URLParam(r, "jobID")
		job, err := h.Jobs.Get(r.Context(), jobID)
		if err != nil {
			api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
			return
		}
		if job.OwnerEmployerUID != user.UID {
			api.FailErr(w, &faults.NotFoundError{Collection: "jobs", ID: jobID}, requestctx.GetRequestID(r.Context()))
			return
		}

		next(w, r)
	}
}
