package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: "1.2.3"}})

	rec := doRequest(t, h, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "1.2.3", response.Version)
}
