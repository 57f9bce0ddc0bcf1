package normalize

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFieldSpellingInvariance(t *testing.T) {
	variants := []RawRecord{
		{"behaviour": "PACING", "start_datetime": "2025-10-20 02:52:05", "duration": "00:01:00"},
		{"behavior": "PACING", "startTime": "2025-10-20T02:52:05Z", "duration_seconds": float64(60)},
		{"behavior_type": "PACING", "timestamp": "2025-10-20 02:52:05 (Mon)", "Duration": float64(60)},
	}
	for i, rec := range variants {
		ev, err := Event(0, map[string]any(rec))
		require.NoError(t, err, "variant %d", i)
		assert.Equal(t, "Pacing", ev.BehaviorLabel, "variant %d", i)
		assert.Equal(t, int64(60), ev.DurationSeconds, "variant %d", i)
		assert.True(t, ev.StartInstant.Equal(time.Date(2025, 10, 20, 2, 52, 5, 0, time.UTC)), "variant %d", i)
	}
}

func TestEventMalformedRecord(t *testing.T) {
	for _, raw := range []any{nil, "just a string", float64(42), []any{"nested"}} {
		_, err := Event(0, raw)
		assert.ErrorIs(t, err, ErrMalformedRecord, "raw %v", raw)
	}
}

func TestEventsSkipAndContinue(t *testing.T) {
	raws := []any{
		map[string]any{"behaviour": "PACING", "start_time": "2025-10-20 02:52:05"},
		"garbage",
		map[string]any{"behaviour": "FEEDING", "start_time": "2025-10-20 03:00:00"},
	}

	events, report := Events(raws)
	require.Len(t, events, 2)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "Pacing", events[0].BehaviorLabel)
	assert.Equal(t, "Feeding", events[1].BehaviorLabel)
}

func TestEventClockDurationWinsOverNumeric(t *testing.T) {
	ev, err := Event(0, map[string]any{
		"behaviour":        "PACING",
		"start_time":       "2025-10-20 02:52:05",
		"duration":         "01:02:03",
		"duration_seconds": float64(999),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3723), ev.DurationSeconds)
}

func TestEventNonClockStringFallsThroughToDelta(t *testing.T) {
	ev, err := Event(0, map[string]any{
		"behaviour":  "PACING",
		"start_time": "2025-10-20 10:00:00",
		"end_time":   "2025-10-20 10:00:30",
		"duration":   "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), ev.DurationSeconds)
	assert.True(t, ev.EndInstant.Equal(time.Date(2025, 10, 20, 10, 0, 30, 0, time.UTC)))
}

func TestEventNegativeDeltaClampsToZero(t *testing.T) {
	ev, err := Event(0, map[string]any{
		"behaviour":  "PACING",
		"start_time": "2025-10-20 10:00:30",
		"end_time":   "2025-10-20 10:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), ev.DurationSeconds)
}

func TestEventEndSynthesizedFromDuration(t *testing.T) {
	ev, err := Event(0, map[string]any{
		"behaviour":        "RECUMBENT",
		"start_time":       "2025-10-20 22:00:00",
		"duration_seconds": float64(90),
	})
	require.NoError(t, err)
	assert.True(t, ev.EndInstant.Equal(ev.StartInstant.Add(90*time.Second)))
	assert.Equal(t, int64(90), ev.DurationSeconds)
}

func TestEventInstantaneousWithoutEndOrDuration(t *testing.T) {
	ev, err := Event(0, map[string]any{
		"behaviour":  "PACING",
		"start_time": "2025-10-20 22:00:00",
	})
	require.NoError(t, err)
	assert.True(t, ev.EndInstant.Equal(ev.StartInstant))
	assert.Equal(t, int64(0), ev.DurationSeconds)
}

func TestEventNegativeExplicitDurationResolvesViaDelta(t *testing.T) {
	ev, err := Event(0, map[string]any{
		"behaviour":        "PACING",
		"start_time":       "2025-10-20 10:00:00",
		"end_time":         "2025-10-20 10:00:10",
		"duration_seconds": float64(-5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), ev.DurationSeconds)
}

func TestEventConfidenceScales(t *testing.T) {
	tests := []struct {
		raw  any
		want float64
	}{
		{float64(87.5), 0.875},
		{float64(0.92), 0.92},
		{"87.5", 0.875},
		{float64(150), 1},
		{float64(-3), 0},
		{float64(1), 1},
	}
	for _, tt := range tests {
		ev, err := Event(0, map[string]any{"behaviour": "PACING", "confidence": tt.raw})
		require.NoError(t, err)
		assert.InDelta(t, tt.want, ev.ConfidenceScore, 1e-9, "raw %v", tt.raw)
	}
}

func TestEventIdPassThroughAndSynthesis(t *testing.T) {
	ev, err := Event(0, map[string]any{"event_id": float64(42), "behaviour": "PACING"})
	require.NoError(t, err)
	assert.Equal(t, "42", ev.Id)

	ev2, err := Event(7, map[string]any{"behaviour": "PACING"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ev2.Id, "evt-7-"), "id %q", ev2.Id)

	ev3, err := Event(7, map[string]any{"behaviour": "PACING"})
	require.NoError(t, err)
	assert.NotEqual(t, ev2.Id, ev3.Id)
}

func TestEventDefaultsAndMediaRewrite(t *testing.T) {
	ev, err := Event(0, map[string]any{
		"behaviour": "PACING",
		"video_url": "s3://zoo-clips/evt.mp4",
		"thumbnail": "s3://zoo-clips/evt.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", ev.CameraSource)
	assert.Equal(t, "https://zoo-clips.s3.amazonaws.com/evt.mp4", ev.VideoUrl)
	assert.Equal(t, "s3://zoo-clips/evt.mp4", ev.RawVideoUrl)
	assert.Equal(t, "https://zoo-clips.s3.amazonaws.com/evt.jpg", ev.ThumbnailUrl)
}

func TestEventTimestampFallbackCounted(t *testing.T) {
	events, report := Events([]any{
		map[string]any{"behaviour": "PACING", "start_time": "not a timestamp"},
	})
	require.Len(t, events, 1)
	assert.Equal(t, 1, report.Fallbacks)
	assert.WithinDuration(t, time.Now().UTC(), events[0].StartInstant, 5*time.Second)
}

func TestEventEpochTimestamps(t *testing.T) {
	start := time.Date(2025, 10, 20, 2, 52, 5, 0, time.UTC)
	ev, err := Event(0, map[string]any{
		"behaviour":  "PACING",
		"start_time": float64(start.Unix()),
		"end_time":   float64(start.Add(45 * time.Second).UnixMilli()),
	})
	require.NoError(t, err)
	assert.True(t, ev.StartInstant.Equal(start))
	assert.Equal(t, int64(45), ev.DurationSeconds)
}

func TestErrMalformedRecordIsWrapped(t *testing.T) {
	_, err := Event(3, "oops")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.Contains(t, err.Error(), "record 3")
}
