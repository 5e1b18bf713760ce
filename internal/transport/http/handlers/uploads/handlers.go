package uploadshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/platform/filestore"
	"jobboard/internal/platform/requestctx"
	"jobboard/internal/transport/http/api"
)

// Folders the consoles are allowed to upload into.
var allowedFolders = map[string]bool{
	"company-logo":    true,
	"business-permit": true,
}

type Handler struct {
	Files    *filestore.Store
	MaxBytes int64
}

func NewHandler(files *filestore.Store, maxBytes int64) *Handler {
	return &Handler{Files: files, MaxBytes: maxBytes}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/uploads", h.handleUpload)
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid multipart payload", requestctx.GetRequestID(r.Context()))
		return
	}

	folder := r.FormValue("folder")
	if !allowedFolders[folder] {
		api.Fail(w, http.StatusBadRequest, "invalid_folder", "unknown upload folder", requestctx.GetRequestID(r.Context()))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "file field is required", requestctx.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	url, err := h.Files.Save(folder, header.Filename, file)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "upload_failed", "failed to store file", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]string{"url": url}, requestctx.GetRequestID(r.Context()))
}
