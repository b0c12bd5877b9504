package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rojgarhub/backend/internal/pkg/apperrors"
)

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	return rec
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantInBody string
	}{
		{
			name:       "validation error exposes message",
			err:        apperrors.NewValidationError("Missing required field: title"),
			wantStatus: http.StatusBadRequest,
			wantInBody: "Missing required field: title",
		},
		{
			name:       "bad request exposes message",
			err:        apperrors.NewBadRequestError("Job ID is required for updates."),
			wantStatus: http.StatusBadRequest,
			wantInBody: "Job ID is required for updates.",
		},
		{
			name:       "not found exposes message",
			err:        apperrors.NewResourceNotFoundError("Job with ID x not found."),
			wantStatus: http.StatusNotFound,
			wantInBody: "Job with ID x not found.",
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantInBody: "Invalid credentials",
		},
		{
			name:       "unknown errors stay generic",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantInBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveError(t, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantInBody)
		})
	}
}

func TestHandleAPIError_NeverLeaksInternalDetail(t *testing.T) {
	rec := serveError(t, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
