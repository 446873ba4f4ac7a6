package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/model"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "typed api error",
			err:        apperr.NewEmailTaken("a@x.com"),
			wantStatus: http.StatusConflict,
			wantBody:   `{"status":"error","message":"email a@x.com is already taken"}`,
		},
		{
			name:       "wrapped api error",
			err:        fmt.Errorf("request failed: %w", apperr.NewInvalidResetToken()),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"error","message":"reset token is invalid or has expired"}`,
		},
		{
			name:       "bare not found",
			err:        model.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":"error","message":"not found"}`,
		},
		{
			name:       "unknown internal error",
			err:        errors.New("pool exhausted"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"error","message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	writeSuccess(rec, http.StatusCreated, map[string]any{"message": "done"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"done"}`, rec.Body.String())
}
