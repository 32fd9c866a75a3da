package respond

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"artgallery-api/internal/domain/works"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", works.ErrInvalidID, http.StatusBadRequest},
		{"validation wrapped", fmt.Errorf("%w: bad", works.ErrValidation), http.StatusBadRequest},
		{"not found wrapped", fmt.Errorf("get: %w", works.ErrNotFound), http.StatusNotFound},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func run(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err, "Failed to load artwork", nil)
	return w
}

func TestErrorMessages(t *testing.T) {
	w := run(works.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Artwork not found"}`, w.Body.String())

	w = run(works.ErrInvalidID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid artwork ID"}`, w.Body.String())

	w = run(errors.New("pq: relation does not exist"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to load artwork"}`, w.Body.String())
}

func TestOKMergesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	OK(c, gin.H{"count": 3})
	assert.JSONEq(t, `{"success":true,"count":3}`, w.Body.String())
}
