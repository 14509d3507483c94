package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithError(rr, http.StatusConflict, "investment 7 is completed")

	var resp Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "investment 7 is completed", resp.Message)
}
