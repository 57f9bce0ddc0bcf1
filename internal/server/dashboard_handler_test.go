package server

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethograph/internal/dao"
)

func TestAnimalEvents(t *testing.T) {
	srv := newTestServer(t, staticUpstream(anchorPayload))

	w := srv.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/animals/ele-1/events?start_date=2025-10-20&end_date=2025-10-21", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dao.EventsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ele-1", resp.Window.AnimalId)
	assert.Equal(t, "2025-10-20", resp.Window.StartDate)
	assert.Equal(t, "2025-10-21", resp.Window.EndDate)
	assert.Equal(t, "wrapped", resp.Window.Shape)
	assert.Equal(t, 2, resp.Window.Report.Total)
	assert.Equal(t, 0, resp.Window.Report.Skipped)

	require.Equal(t, 2, resp.Total)
	require.Len(t, resp.Items, 2)

	pacing := resp.Items[0]
	assert.NotEmpty(t, pacing.Id)
	assert.Equal(t, "Pacing", pacing.BehaviorLabel)
	assert.Equal(t, "PACING", pacing.RawBehaviorCode)
	assert.Equal(t, int64(60), pacing.DurationSeconds)
	assert.Equal(t, "CAM-A", pacing.CameraSource)
	assert.InDelta(t, 0.87, pacing.ConfidenceScore, 1e-9)
	assert.Equal(t, 2, pacing.StartInstant.UTC().Hour())

	recumbent := resp.Items[1]
	assert.Equal(t, "Recumbent Stopped", recumbent.BehaviorLabel)
	assert.Equal(t, int64(90), recumbent.DurationSeconds)
	assert.Equal(t, "Unknown", recumbent.CameraSource)
	assert.InDelta(t, 0.61, recumbent.ConfidenceScore, 1e-9)
}

func TestAnimalSummary(t *testing.T) {
	srv := newTestServer(t, staticUpstream(anchorPayload))

	w := srv.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/animals/ele-1/summary?start_date=2025-10-20&end_date=2025-10-21", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dao.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, int64(2), resp.Summary.TotalEventCount)
	assert.Equal(t, int64(150), resp.Summary.TotalMonitoredSeconds)
	assert.Equal(t, "Pacing", resp.Summary.MostFrequentBehaviorLabel)

	require.Len(t, resp.Summary.Behaviors, 2)
	pacing := resp.Summary.Behaviors[0]
	assert.Equal(t, "Pacing", pacing.BehaviorLabel)
	assert.Equal(t, int64(1), pacing.Count)
	assert.Equal(t, int64(60), pacing.TotalDurationSeconds)
	assert.InDelta(t, 40.0, pacing.PercentageOfTotal, 1e-9)
	recumbent := resp.Summary.Behaviors[1]
	assert.Equal(t, "Recumbent Stopped", recumbent.BehaviorLabel)
	assert.InDelta(t, 60.0, recumbent.PercentageOfTotal, 1e-9)

	assert.Len(t, resp.Summary.Heatmap, 48)

	assert.Equal(t, map[string]string{
		"Pacing":            "#4e79a7",
		"Recumbent Stopped": "#f28e2b",
	}, resp.Legend)
}

func TestAnimalHeatmap(t *testing.T) {
	srv := newTestServer(t, staticUpstream(anchorPayload))

	w := srv.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/animals/ele-1/heatmap?start_date=2025-10-20&end_date=2025-10-21", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dao.HeatmapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cells, 48)

	counted := 0
	for _, cell := range resp.Cells {
		if cell.Count == 0 {
			continue
		}
		counted++
		switch cell.BehaviorLabel {
		case "Pacing":
			assert.Equal(t, 2, cell.HourOfDay)
			assert.Equal(t, int64(60), cell.DurationSeconds)
		case "Recumbent Stopped":
			assert.Equal(t, 3, cell.HourOfDay)
			assert.Equal(t, int64(90), cell.DurationSeconds)
		default:
			t.Fatalf("unexpected label %q", cell.BehaviorLabel)
		}
	}
	assert.Equal(t, 2, counted)
}

func TestAnimalReport(t *testing.T) {
	srv := newTestServer(t, staticUpstream(anchorPayload))

	w := srv.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/animals/ele-1/report?start_date=2025-10-20&end_date=2025-10-21", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dao.ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ele-1", resp.Window.AnimalId)
	assert.Equal(t, int64(2), resp.Summary.TotalEventCount)
	assert.Len(t, resp.Legend, 2)
	assert.Len(t, resp.Events, 2)
}

func TestAnimalReportCSV(t *testing.T) {
	srv := newTestServer(t, staticUpstream(anchorPayload))

	w := srv.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/animals/ele-1/report.csv?start_date=2025-10-20&end_date=2025-10-21", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, "attachment; filename=ele-1_2025-10-20_2025-10-21.csv",
		w.Header().Get("Content-Disposition"))

	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"id", "behavior", "raw_code", "start", "end",
		"duration_seconds", "camera", "confidence", "video_url",
	}, rows[0])

	assert.Equal(t, "Pacing", rows[1][1])
	assert.Equal(t, "PACING", rows[1][2])
	assert.Equal(t, "2025-10-20T02:52:05Z", rows[1][3])
	assert.Equal(t, "60", rows[1][5])
	assert.Equal(t, "CAM-A", rows[1][6])
	assert.Equal(t, "0.87", rows[1][7])

	assert.Equal(t, "Recumbent Stopped", rows[2][1])
	assert.Equal(t, "90", rows[2][5])
}
