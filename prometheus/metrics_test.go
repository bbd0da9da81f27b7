package prometheus_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	posprom "posadmin/prometheus"
)

func TestHandlerExposesRecordedMetrics(t *testing.T) {
	m := posprom.NewClientMetrics("posadmin-test")
	m.ObserveRequest(http.MethodGet, "products", http.StatusOK, 25*time.Millisecond)
	m.ObserveTransportError("customers")
	m.ObserveFallback("seed")
	m.ObserveUnauthorized()

	srv := httptest.NewServer(posprom.GetPrometheusHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	exposition := string(body)
	assert.Contains(t, exposition, `api_client_requests_total{method="GET",resource="products",service="posadmin-test",status="200"}`)
	assert.Contains(t, exposition, "api_client_request_duration_seconds_bucket")
	assert.Contains(t, exposition, `api_client_transport_errors_total{resource="customers",service="posadmin-test"}`)
	assert.Contains(t, exposition, `fallback_activations_total{kind="seed",service="posadmin-test"}`)
	assert.Contains(t, exposition, `session_teardowns_total{service="posadmin-test"}`)
}
