package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethograph/internal/dao"
)

func TestWindowParamValidation(t *testing.T) {
	srv := newTestServer(t, staticUpstream(anchorPayload))

	for name, query := range map[string]string{
		"missing dates":    "",
		"missing end":      "start_date=2025-10-20",
		"not a date":       "start_date=oct-20&end_date=2025-10-21",
		"wrong format":     "start_date=20251020&end_date=2025-10-21",
		"slash separators": "start_date=2025/10/20&end_date=2025/10/21",
	} {
		w := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/animals/ele-1/events?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestWindowRejectsReversedRange(t *testing.T) {
	srv := newTestServer(t, staticUpstream(anchorPayload))

	w := srv.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/animals/ele-1/events?start_date=2025-10-21&end_date=2025-10-20", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "start_date after end_date")
}

func TestWindowUpstreamFailureIsBadGateway(t *testing.T) {
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pipeline down", http.StatusInternalServerError)
	}))

	w := srv.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/animals/ele-1/events?start_date=2025-10-20&end_date=2025-10-21", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWindowCaching(t *testing.T) {
	var upstreamCalls int32
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
		w.Write([]byte(anchorPayload))
	}))

	get := func(query string) dao.EventsResponse {
		w := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/animals/ele-1/events?"+query, nil))
		require.Equal(t, http.StatusOK, w.Code)
		var resp dao.EventsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	first := get("start_date=2025-10-20&end_date=2025-10-21")
	assert.False(t, first.Window.Cached)
	assert.Equal(t, int32(1), atomic.LoadInt32(&upstreamCalls))

	second := get("start_date=2025-10-20&end_date=2025-10-21")
	assert.True(t, second.Window.Cached)
	assert.Equal(t, int32(1), atomic.LoadInt32(&upstreamCalls))
	assert.Equal(t, first.Total, second.Total)

	// A different range is a different cache entry.
	get("start_date=2025-10-20&end_date=2025-10-22")
	assert.Equal(t, int32(2), atomic.LoadInt32(&upstreamCalls))

	// refresh bypasses the cache.
	refreshed := get("start_date=2025-10-20&end_date=2025-10-21&refresh=true")
	assert.False(t, refreshed.Window.Cached)
	assert.Equal(t, int32(3), atomic.LoadInt32(&upstreamCalls))
}
