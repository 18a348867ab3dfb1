package v1

import (
	"context"
	"net/http"
	"testing"

	"go-talent-backend/config"
	"go-talent-backend/pkg/metrics"

	"github.com/stretchr/testify/assert"
)

type stubHealth map[string]string

func (s stubHealth) Check(context.Context) map[string]string { return s }

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:                   "test",
		FrontendURL:              "http://localhost:3000",
		JWTSecret:                "secret",
		RateLimitWindowSeconds:   60,
		RateLimitSearchThreshold: 10,
	}
}

func TestRouterHealth(t *testing.T) {
	r := NewRouter(RouterDeps{HealthUC: stubHealth{"status": "ok", "database": "ok"}, Config: testConfig()})
	w := serve(r, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	r = NewRouter(RouterDeps{HealthUC: stubHealth{"status": "degraded", "database": "down"}, Config: testConfig()})
	w = serve(r, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouterProtectsTalentRoutes(t *testing.T) {
	r := NewRouter(RouterDeps{TalentUC: new(MockTalentUsecase), Config: testConfig()})

	for _, target := range []string{"/v1/talents/search", "/v1/talents/filter-options", "/v1/talents/export", "/v1/talents/t-1"} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}
}

func TestRouterMetrics(t *testing.T) {
	r := NewRouter(RouterDeps{Config: testConfig(), Metrics: metrics.New()})
	serve(r, http.MethodGet, "/v1/health", "")

	w := serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "talent_http_requests_total")

	w = serve(NewRouter(RouterDeps{Config: testConfig()}), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
