package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAddress(t *testing.T) {
	mux := http.NewServeMux()
	NewAddressAPI().Register(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/address/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Status int             `json:"status"`
		Data   json.RawMessage `json:"data"`
		Error  *string         `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Nil(t, env.Error)

	var addr Address
	require.NoError(t, json.Unmarshal(env.Data, &addr))
	assert.Equal(t, "1234 Random St", addr.Address)
	assert.False(t, addr.ID.IsNil())
}

func TestGetAddressFreshIDEachCall(t *testing.T) {
	mux := http.NewServeMux()
	NewAddressAPI().Register(mux)

	ids := make(map[uuid.UUID]bool)
	for range 3 {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/address/", nil))

		var env struct {
			Data Address `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		ids[env.Data.ID] = true
	}
	assert.Len(t, ids, 3)
}
