package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailableBody(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	rec := httptest.NewRecorder()
	Unavailable(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-05-01T10:00:00Z", body["timestamp"])
	assert.Equal(t, float64(503), body["status"])
	assert.Equal(t, "Database connection error", body["error"])
	assert.Equal(t, "Can't connect to the database", body["errorMessage"])
}

func TestValidationErrorIsBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "email must be a valid email address"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"status":400,"message":"Validation failed","errors":{"email":"email must be a valid email address"}}`,
		rec.Body.String())
}

func TestErrorEnvelopes(t *testing.T) {
	cases := []struct {
		write func(http.ResponseWriter, string)
		code  int
	}{
		{BadRequest, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.write(rec, "boom")
		assert.Equal(t, tc.code, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"boom"`)
	}
}

func TestSuccessWriters(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, map[string]int{"id": 4})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":4}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
