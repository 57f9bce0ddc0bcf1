package normalize

import (
	"fmt"
	"strings"
	"time"

	"ethograph/internal/model"
	"ethograph/pkg/str"
)

// Candidate key lists, in resolution order. The pipeline API has shipped
// every one of these spellings at some point.
var (
	behaviorKeys = []string{
		"behaviour", "behavior", "Behaviour", "Behavior",
		"behaviour_type", "behavior_type", "behaviourType", "behaviorType",
		"BehaviourType", "BehaviorType", "label", "Label",
	}
	idKeys = []string{
		"id", "Id", "ID", "_id", "event_id", "eventId", "EventId", "uuid", "Uuid",
	}
	startKeys = []string{
		"start_datetime", "startDatetime", "StartDatetime",
		"start_time", "startTime", "StartTime", "start",
		"timestamp", "Timestamp", "time", "datetime",
	}
	endKeys = []string{
		"end_datetime", "endDatetime", "EndDatetime",
		"end_time", "endTime", "EndTime", "end",
		"stop_time", "stopTime", "StopTime",
	}
	durationKeys = []string{
		"duration_seconds", "durationSeconds", "DurationSeconds",
		"frame_time_seconds", "frameTimeSeconds", "FrameTimeSeconds",
		"duration", "Duration", "duration_secs", "durationSecs",
	}
	cameraKeys = []string{
		"camera", "Camera", "camera_source", "cameraSource",
		"camera_id", "cameraId", "camera_name", "cameraName", "source",
	}
	videoKeys = []string{
		"video_url", "videoUrl", "VideoUrl", "video",
		"clip_url", "clipUrl", "media_url", "mediaUrl",
	}
	thumbnailKeys = []string{
		"thumbnail_url", "thumbnailUrl", "ThumbnailUrl", "thumbnail",
		"preview_url", "previewUrl",
	}
	confidenceKeys = []string{
		"confidence", "Confidence", "confidence_score", "confidenceScore",
		"score", "probability",
	}
	contextKeys = []string{
		"environmental_context", "environmentalContext",
		"environment", "env", "context", "sensors", "sensor_data",
	}
)

// Report carries the diagnostics of one batch normalization: how many
// records arrived, how many were skipped as malformed, and how many
// timestamp now-substitutions happened.
type Report struct {
	Total     int `json:"total"`
	Skipped   int `json:"skipped"`
	Fallbacks int `json:"fallbacks"`
}

// Event normalizes a single unwrapped list element. It fails only for
// elements that are not JSON objects; object records degrade field by
// field instead. idx feeds synthesized ids for records without one.
func Event(idx int, raw any) (*model.Event, error) {
	ev, _, err := normalizeOne(idx, raw)
	return ev, err
}

// Events normalizes a whole unwrapped list with skip-and-continue:
// malformed elements are dropped and counted, never fatal.
func Events(raws []any) ([]*model.Event, Report) {
	report := Report{Total: len(raws)}
	events := make([]*model.Event, 0, len(raws))
	for i, raw := range raws {
		ev, fallbacks, err := normalizeOne(i, raw)
		if err != nil {
			report.Skipped++
			continue
		}
		report.Fallbacks += fallbacks
		events = append(events, ev)
	}
	return events, report
}

func normalizeOne(idx int, raw any) (*model.Event, int, error) {
	var rec RawRecord
	switch v := raw.(type) {
	case RawRecord:
		rec = v
	case map[string]any:
		rec = RawRecord(v)
	}
	if rec == nil {
		return nil, 0, fmt.Errorf("record %d: %w", idx, ErrMalformedRecord)
	}

	fallbacks := 0
	var start time.Time
	startParsed := false
	if v, ok := rec.Lookup(startKeys...); ok {
		start, startParsed = instantFromValue(v)
	} else {
		start = time.Now().UTC()
	}
	if !startParsed {
		fallbacks++
	}

	var end time.Time
	endKnown := false
	if v, ok := rec.Lookup(endKeys...); ok {
		var parsed bool
		end, parsed = instantFromValue(v)
		endKnown = true
		if !parsed {
			fallbacks++
		}
	}

	dur := resolveDuration(rec)
	if dur == 0 && endKnown {
		if d := end.Sub(start); d > 0 {
			dur = int64(d / time.Second)
		}
	}
	if !endKnown {
		end = start
		if dur > 0 {
			end = start.Add(time.Duration(dur) * time.Second)
		}
	}

	code := rec.StringField("", behaviorKeys...)
	id := rec.StringField("", idKeys...)
	if id == "" {
		id = fmt.Sprintf("evt-%d-%d-%s", idx, time.Now().UnixMilli(),
			str.RandString(6, str.LowerAlphabet+str.Numerals))
	}
	rawVideo := rec.StringField("", videoKeys...)

	ev := &model.Event{
		Id:                   id,
		BehaviorLabel:        DisplayLabel(code),
		RawBehaviorCode:      code,
		StartInstant:         start,
		EndInstant:           end,
		DurationSeconds:      dur,
		CameraSource:         rec.StringField("Unknown", cameraKeys...),
		VideoUrl:             RewriteMediaURL(rawVideo),
		RawVideoUrl:          rawVideo,
		ThumbnailUrl:         RewriteMediaURL(rec.StringField("", thumbnailKeys...)),
		ConfidenceScore:      clampConfidence(rec.FloatField(0, confidenceKeys...)),
		EnvironmentalContext: rec.MapField(contextKeys...),
	}
	return ev, fallbacks, nil
}

// resolveDuration runs the duration priority chain: a clock-style string
// in any duration field wins, then the first present numeric duration
// field. Zero means "unresolved here"; the caller may still derive the
// duration from the start/end delta.
func resolveDuration(r RawRecord) int64 {
	for _, k := range durationKeys {
		if v, ok := r[k]; ok {
			if s, isStr := v.(string); isStr {
				if secs, ok := ParseClockDuration(s); ok {
					return secs
				}
			}
		}
	}
	v, ok := r.Lookup(durationKeys...)
	if !ok {
		return 0
	}
	f, ok := toFloat(v)
	if !ok || f < 0 {
		return 0
	}
	return int64(f)
}

func instantFromValue(v any) (time.Time, bool) {
	switch val := v.(type) {
	case string:
		if epochRe.MatchString(strings.TrimSpace(val)) {
			if f, ok := toFloat(val); ok {
				return epochInstant(f), true
			}
		}
		return ParseInstant(val)
	case nil:
		return time.Now().UTC(), false
	default:
		if f, ok := toFloat(v); ok {
			return epochInstant(f), true
		}
		return time.Now().UTC(), false
	}
}

// Confidence arrives either as a 0..1 fraction or a 0..100 percentage.
func clampConfidence(v float64) float64 {
	if v > 1 {
		v = v / 100
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
