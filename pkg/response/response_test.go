package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Forbidden(rec, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, "Missing fields", map[string]string{"name": "name is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing fields","fields":{"name":"name is required"}}`, rec.Body.String())
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
