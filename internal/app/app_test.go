package app

import (
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"skillmatrix/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{
			AppName:     "skillmatrix-test",
			Environment: "test",
			HTTPPort:    "0",
			BaseURL:     "http://localhost:8080/api",
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Store: config.StoreConfig{Driver: config.DriverMemory, SeedDemo: true},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, cleanup, err := Bootstrap(testConfig(), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })
	return a
}

func TestBootstrap_ServesSeededAPI(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.Fiber.Test(httptest.NewRequest(fiber.MethodGet, "/api/people/person-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"self":"http://localhost:8080/api/people/person-1"`)
}

func TestBootstrap_HealthAndMetrics(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.Fiber.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = a.Fiber.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "skillmatrix_http_requests_total")
}

func TestBootstrap_CORSPreflight(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodOptions, "/api/people", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodPost)

	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestMountPath(t *testing.T) {
	tests := map[string]string{
		"/api":                      "/api",
		"/api/":                     "/api",
		"api":                       "/api",
		"":                          "",
		"http://localhost:8080/api": "/api",
		"https://example.com":       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, MountPath(in), in)
	}
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestNewContainer_RejectsUnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Driver = "sqlite"

	_, err := NewContainer(cfg, log.New(io.Discard, "", 0))
	assert.Error(t, err)
}
