package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupPresenceBeatsTruthiness(t *testing.T) {
	rec := RawRecord{"behaviour": "", "behavior": "PACING"}

	v, ok := rec.Lookup("behaviour", "behavior")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestLookupNullIsPresent(t *testing.T) {
	rec := RawRecord{"start_time": nil, "start": "2025-10-20 02:52:05"}

	v, ok := rec.Lookup("start_time", "start")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestLookupMissing(t *testing.T) {
	rec := RawRecord{"camera": "enclosure-3"}

	_, ok := rec.Lookup("behaviour", "behavior")
	assert.False(t, ok)
}

func TestStringFieldCoercion(t *testing.T) {
	rec := RawRecord{
		"camera_id": float64(3),
		"event_id":  json.Number("42"),
		"uuid":      true,
	}

	assert.Equal(t, "3", rec.StringField("", "camera_id"))
	assert.Equal(t, "42", rec.StringField("", "event_id"))
	assert.Equal(t, "true", rec.StringField("", "uuid"))
	assert.Equal(t, "Unknown", rec.StringField("Unknown", "camera_name"))
}

func TestStringFieldUncoercibleFallsBack(t *testing.T) {
	rec := RawRecord{"camera": map[string]any{"id": 3}}

	assert.Equal(t, "Unknown", rec.StringField("Unknown", "camera"))
}

func TestFloatFieldCoercion(t *testing.T) {
	rec := RawRecord{
		"confidence":  "87.5",
		"score":       float64(0.92),
		"probability": "not a number",
	}

	assert.Equal(t, 87.5, rec.FloatField(0, "confidence"))
	assert.Equal(t, 0.92, rec.FloatField(0, "score"))
	assert.Equal(t, float64(0), rec.FloatField(0, "probability"))
	assert.Equal(t, 0.5, rec.FloatField(0.5, "missing"))
}

func TestMapField(t *testing.T) {
	ctx := map[string]any{"temperature": 21.5}
	rec := RawRecord{"environment": ctx}

	assert.Equal(t, ctx, rec.MapField("environmental_context", "environment"))
	assert.Nil(t, rec.MapField("sensors"))
}
