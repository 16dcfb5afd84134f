package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_WritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, http.StatusCreated, "Created", map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Created", body.Message)
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, body.Data)
}

func TestNotFound_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	NotFound(rec, "")

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Resource not found", body.Message)
}

func TestNoContent_HasEmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()

	NoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
