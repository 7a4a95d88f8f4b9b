package envelope

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	t.Run("payload with explicit null error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Write(rec, http.StatusOK, map[string]string{"k": "v"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":200,"data":{"k":"v"},"error":null}`, rec.Body.String())
	})

	t.Run("nil payload serializes as null, not omitted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Write(rec, http.StatusOK, nil)

		assert.JSONEq(t, `{"status":200,"data":null,"error":null}`, rec.Body.String())
	})
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "Student not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"data":null,"error":"Student not found"}`, rec.Body.String())
}

func TestWriteFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteFailure(rec, http.StatusBadRequest, "Validation Error", map[string]string{
		"email": "Invalid email",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":400,"data":{"email":"Invalid email"},"error":"Validation Error"}`, rec.Body.String())
}
