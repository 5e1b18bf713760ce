package api

import (
	"errors"
	"net/http"

	"jobboard/internal/faults"
)

// FailErr translates a typed domain error into the envelope the console
// expects. Unknown errors become an opaque 500.
func FailErr(w http.ResponseWriter, err error, requestID string) {
	var validation *faults.ValidationError
	if errors.As(err, &validation) {
		FailWithDetails(w, http.StatusBadRequest, faults.CodeValidation, "payload validation failed",
			map[string]any{"fields": validation.Issues}, requestID)
		return
	}

	switch faults.Code(err) {
	case faults.CodeAuth:
		Fail(w, http.StatusUnauthorized, faults.CodeAuth, err.Error(), requestID)
	case faults.CodeNotFound:
		Fail(w, http.StatusNotFound, faults.CodeNotFound, err.Error(), requestID)
	case faults.CodeDuplicate:
		Fail(w, http.StatusConflict, faults.CodeDuplicate, err.Error(), requestID)
	case faults.CodeWriteFailed:
		Fail(w, http.StatusInternalServerError, faults.CodeWriteFailed, err.Error(), requestID)
	default:
		Fail(w, http.StatusInternalServerError, "internal_error", "internal error", requestID)
	}
}
