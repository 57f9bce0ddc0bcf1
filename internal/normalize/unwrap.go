package normalize

// Wrapper keys the pipeline API has used around the record list, probed
// in order.
var wrapperKeys = []string{"timeline", "behaviours", "behaviors", "data", "events"}

type Shape string

const (
	ShapeList        Shape = "list"
	ShapeWrapped     Shape = "wrapped"
	ShapeErrorMarker Shape = "error"
	ShapeUnknown     Shape = "unknown"
)

// Envelope describes how a response payload was unwrapped.
type Envelope struct {
	Shape      Shape  `json:"shape"`
	WrapperKey string `json:"wrapperKey,omitempty"`
	ErrorText  string `json:"errorText,omitempty"`
}

// UnwrapRecords extracts the raw record list from whatever the pipeline
// returned this release: a bare array, a wrapped object, or an error
// marker (a valid no-data response). Unrecognized shapes yield an empty
// list with Shape set so the caller can surface the diagnostic; this
// never fails.
func UnwrapRecords(payload any) ([]any, Envelope) {
	switch v := payload.(type) {
	case []any:
		return v, Envelope{Shape: ShapeList}
	case map[string]any:
		if errVal, ok := v["error"]; ok {
			text, _ := toString(errVal)
			return nil, Envelope{Shape: ShapeErrorMarker, ErrorText: text}
		}
		for _, k := range wrapperKeys {
			if arr, ok := v[k].([]any); ok {
				return arr, Envelope{Shape: ShapeWrapped, WrapperKey: k}
			}
		}
	}
	return nil, Envelope{Shape: ShapeUnknown}
}
