package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/usecase"
	"github.com/sstlab/vigia/pkg/utils/errutil"
	"github.com/sstlab/vigia/pkg/utils/safe"
)

type successResponse struct {
	Success bool `json:"success"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// respondError maps use case errors onto HTTP statuses: missing records are
// 404, rejected input 400, blocked deletions and unmet prerequisites 409.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrStillReferenced),
		errors.Is(err, usecase.ErrNoSegment),
		errors.Is(err, usecase.ErrInventoryMissing):
		status = http.StatusConflict
	}

	errutil.HandleHTTP(r.Context(), w, err, status)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(usecase.ErrInvalidInput, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}

func paramInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(usecase.ErrInvalidInput, "invalid ID parameter",
			goerr.V("param", name), goerr.V("value", raw))
	}
	return id, nil
}
