package linkedin

import (
	"Limelight/internal/api/config"
	"Limelight/internal/platform"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/socialActions/urn:li:activity:7123", r.URL.Path)
		assert.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"likesSummary":{"totalLikes":42},
			"commentsSummary":{"aggregatedTotalComments":7},
			"sharesSummary":{"totalShares":3},
			"viewsSummary":{"totalViews":900,"totalImpressions":1500}
		}`))
	}))
	defer server.Close()

	client := NewClient(config.PlatformAPIConfig{BaseURL: server.URL, Timeout: 5})

	metrics, err := client.FetchMetrics(context.Background(), "test-token", "7123")
	require.NoError(t, err)
	assert.Equal(t, int64(900), metrics.Views)
	assert.Equal(t, int64(42), metrics.Likes)
	assert.Equal(t, int64(7), metrics.Comments)
	assert.Equal(t, int64(3), metrics.Shares)
	assert.Equal(t, int64(1500), metrics.Impressions)
}

func TestFetchMetricsImpressionFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"viewsSummary":{"totalViews":300,"totalImpressions":0}}`))
	}))
	defer server.Close()

	client := NewClient(config.PlatformAPIConfig{BaseURL: server.URL, Timeout: 5})

	metrics, err := client.FetchMetrics(context.Background(), "test-token", "7123")
	require.NoError(t, err)
	assert.Equal(t, int64(300), metrics.Impressions)
}

func TestFetchMetricsForbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(config.PlatformAPIConfig{BaseURL: server.URL, Timeout: 5})

	_, err := client.FetchMetrics(context.Background(), "revoked", "7123")
	assert.ErrorIs(t, err, platform.ErrUnauthorized)
}
