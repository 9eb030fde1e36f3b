package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/payment/status/:orderId", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payment/status/"+id, nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.requests.WithLabelValues(http.MethodGet, "/api/payment/status/:orderId", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "enrollment_http_requests_total"))
}

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.ObserveReconciliation("verify", "SUCCESS")
	m.ObserveReconciliation("verify", "SUCCESS")
	m.ObserveReconciliation("sweep", "error")
	m.ObserveWebhook("accepted")
	m.ObserveSweepQueued(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reconciliations.WithLabelValues("verify", "SUCCESS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reconciliations.WithLabelValues("sweep", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhooks.WithLabelValues("accepted")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sweepQueued))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveReconciliation("verify", "SUCCESS")
		m.ObserveWebhook("accepted")
		m.ObserveSweepQueued(1)
	})
}
