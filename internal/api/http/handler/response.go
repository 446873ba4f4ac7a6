// Package handler implements the JSON/multipart HTTP handlers of the
// portfolio API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/model"
)

// maxUploadSize caps multipart request bodies (fields plus files).
const maxUploadSize = 32 << 20

func writeJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, payload map[string]any) {
	body := map[string]any{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, status, body)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if apiErr, ok := apperr.FromError(err); ok {
		status = apiErr.Status
		message = apiErr.Message
	} else if errors.Is(err, model.ErrNotFound) {
		status = http.StatusNotFound
		message = "not found"
	}

	writeJSON(w, status, map[string]any{"status": "error", "message": message})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.NewValidation("invalid request body")
	}
	return nil
}

// fileFromForm extracts a named multipart file. A missing file is not
// an error; the upload is simply absent.
func fileFromForm(r *http.Request, field string) (*model.FileUpload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.NewValidation("malformed multipart body")
	}

	return &model.FileUpload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Data:        file,
	}, nil
}
