package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, body string) any {
	t.Helper()
	var payload any
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

func TestUnwrapBareList(t *testing.T) {
	records, env := UnwrapRecords(decodePayload(t, `[{"behaviour":"PACING"},{"behaviour":"FEEDING"}]`))
	assert.Len(t, records, 2)
	assert.Equal(t, ShapeList, env.Shape)
}

func TestUnwrapWrapperKeys(t *testing.T) {
	for _, key := range []string{"timeline", "behaviours", "behaviors", "data", "events"} {
		records, env := UnwrapRecords(decodePayload(t, `{"`+key+`":[{"behaviour":"PACING"}]}`))
		assert.Len(t, records, 1, "key %q", key)
		assert.Equal(t, ShapeWrapped, env.Shape, "key %q", key)
		assert.Equal(t, key, env.WrapperKey, "key %q", key)
	}
}

func TestUnwrapWrapperKeyPrecedence(t *testing.T) {
	records, env := UnwrapRecords(decodePayload(t,
		`{"data":[{"a":1},{"a":2}],"timeline":[{"a":3}]}`))
	assert.Equal(t, "timeline", env.WrapperKey)
	assert.Len(t, records, 1)
}

func TestUnwrapSkipsNonListWrapperValues(t *testing.T) {
	records, env := UnwrapRecords(decodePayload(t,
		`{"timeline":"maintenance","data":[{"a":1}]}`))
	assert.Equal(t, "data", env.WrapperKey)
	assert.Len(t, records, 1)
}

func TestUnwrapErrorMarker(t *testing.T) {
	records, env := UnwrapRecords(decodePayload(t, `{"error":"no data for range"}`))
	assert.Empty(t, records)
	assert.Equal(t, ShapeErrorMarker, env.Shape)
	assert.Equal(t, "no data for range", env.ErrorText)
}

func TestUnwrapErrorMarkerPresenceBased(t *testing.T) {
	records, env := UnwrapRecords(decodePayload(t, `{"error":null,"data":[{"a":1}]}`))
	assert.Empty(t, records)
	assert.Equal(t, ShapeErrorMarker, env.Shape)
}

func TestUnwrapUnrecognizedShapes(t *testing.T) {
	for _, body := range []string{`"plain string"`, `42`, `{"items":[{"a":1}]}`, `null`} {
		records, env := UnwrapRecords(decodePayload(t, body))
		assert.Empty(t, records, "body %s", body)
		assert.Equal(t, ShapeUnknown, env.Shape, "body %s", body)
	}
}
