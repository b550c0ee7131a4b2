package tiktok

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
		assert.Equal(t, "/v2/video/query/", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"videos":[{"id":"v1","view_count":1000,"like_count":50,"comment_count":10,"share_count":5}]}}`))
	}))
	defer server.Close()

	client := NewClient(config.PlatformAPIConfig{BaseURL: server.URL, Timeout: 5})

	metrics, err := client.FetchMetrics(context.Background(), "test-token", "v1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), metrics.Views)
	assert.Equal(t, int64(50), metrics.Likes)
	assert.Equal(t, int64(10), metrics.Comments)
	assert.Equal(t, int64(5), metrics.Shares)
	assert.Equal(t, int64(1000), metrics.Impressions)
}

func TestFetchMetricsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(config.PlatformAPIConfig{BaseURL: server.URL, Timeout: 5})

	_, err := client.FetchMetrics(context.Background(), "expired", "v1")
	assert.ErrorIs(t, err, platform.ErrUnauthorized)
}

func TestFetchMetricsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(config.PlatformAPIConfig{BaseURL: server.URL, Timeout: 5})

	_, err := client.FetchMetrics(context.Background(), "test-token", "v1")
	require.Error(t, err)

	var fetchErr *platform.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, platform.PlatformTikTok, fetchErr.Platform)
}

func TestFetchMetricsVideoMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"videos":[]}}`))
	}))
	defer server.Close()

	client := NewClient(config.PlatformAPIConfig{BaseURL: server.URL, Timeout: 5})

	_, err := client.FetchMetrics(context.Background(), "test-token", "missing")
	var fetchErr *platform.FetchError
	require.ErrorAs(t, err, &fetchErr)
}
