package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSearch(t *testing.T) {
	m := New()

	m.RecordSearch("backend", 40, 12, map[string]int{"min_score": 20, "has_github": 8}, 15*time.Millisecond)
	m.RecordSearch("", 10, 10, nil, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("backend")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("none")))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.scored))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.dropped.WithLabelValues("min_score")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.dropped.WithLabelValues("has_github")))
}

func TestRecordErrorsAndExports(t *testing.T) {
	m := New()

	m.RecordSearchError("fetch")
	m.RecordSearchError("fetch")
	m.RecordExport("csv")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searchErrors.WithLabelValues("fetch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("csv")))
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/v1/talents/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/talents/abc", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/v1/talents/:id", "204")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "talent_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
