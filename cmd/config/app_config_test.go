package config

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/internal/testutil"
	"Nutriplan-Backend/internal/utils"
	"Nutriplan-Backend/pkg/jwt"
	"Nutriplan-Backend/pkg/usda"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	utils.LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"), "")
}

func TestUSDAConfig(t *testing.T) {
	loadEnv(t, map[string]string{
		"USDA_API_KEY":           "key",
		"USDA_REQUESTS_PER_HOUR": "1000",
		"USDA_TIMEOUT_SECONDS":   "15",
	})

	cfg := USDAConfig()
	assert.Equal(t, usda.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, 1000, cfg.RequestsPerHour)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestUSDAConfigIgnoresBadNumbers(t *testing.T) {
	loadEnv(t, map[string]string{
		"USDA_API_URL":           "http://localhost:9999/fdc/v1",
		"USDA_REQUESTS_PER_HOUR": "lots",
	})

	cfg := USDAConfig()
	assert.Equal(t, "http://localhost:9999/fdc/v1", cfg.BaseURL)
	assert.Zero(t, cfg.RequestsPerHour)
	assert.Zero(t, cfg.Timeout)
}

func TestNewAppRoutes(t *testing.T) {
	loadEnv(t, map[string]string{
		"LOG_FILE":   filepath.Join(t.TempDir(), "logs", "app.log"),
		"JWT_SECRET": "secret",
	})
	app, err := NewApp(testutil.NewTestDB(t))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/meal-plans?startDate=2024-01-01&endDate=2024-01-31", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meal-plans?startDate=2024-01-01&endDate=2024-01-31", nil)
	req.Header.Set("Authorization", "Bearer "+jwt.NewJWTService("secret").GenerateTokenUser("4b4a3f0e-4c77-4c3b-a1f7-1d0e2f3a4b5c", domain.RoleUser))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
