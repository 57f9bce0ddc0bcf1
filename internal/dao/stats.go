package dao

// TrendsRequest selects a live-activity aggregation window. Start and
// end are RFC3339 strings; window is a flux duration like 5m or 1h.
// Defaults: start=24 hours ago, end=now, window=5m.
type TrendsRequest struct {
	Start  string `form:"start" json:"start"`
	End    string `form:"end" json:"end"`
	Window string `form:"window" json:"window"`
}

type TimeCount struct {
	Time  string `json:"time"`
	Count int64  `json:"count"`
}

type BehaviorTimeCount struct {
	Behavior string `json:"behavior"`
	Time     string `json:"time"`
	Count    int64  `json:"count"`
}

// TrendsResponse carries event-count trends for one animal: the whole
// stream plus one series per behavior label.
type TrendsResponse struct {
	Events    []TimeCount         `json:"events"`
	Behaviors []BehaviorTimeCount `json:"behaviors,omitempty"`
}
