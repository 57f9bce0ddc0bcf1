package model

// BehaviorAggregate holds the per-label statistics for one dashboard window.
// Min and max ignore zero-duration events; the average does not.
type BehaviorAggregate struct {
	BehaviorLabel          string  `json:"behaviorLabel"`
	Count                  int64   `json:"count"`
	TotalDurationSeconds   int64   `json:"totalDurationSeconds"`
	AverageDurationSeconds float64 `json:"averageDurationSeconds"`
	MinDurationSeconds     int64   `json:"minDurationSeconds"`
	MaxDurationSeconds     int64   `json:"maxDurationSeconds"`
	PercentageOfTotal      float64 `json:"percentageOfTotal"`
}

// HeatmapCell is one (label, hour-of-day) bucket. The grid is complete:
// every distinct label carries all 24 hours, zeros included.
type HeatmapCell struct {
	BehaviorLabel   string `json:"behaviorLabel"`
	HourOfDay       int    `json:"hourOfDay"`
	Count           int64  `json:"count"`
	DurationSeconds int64  `json:"durationSeconds"`
}

// DashboardSummary is the aggregate view of one (animal, date range) window.
// Behaviors keeps first-encounter order from the underlying event list.
type DashboardSummary struct {
	TotalEventCount           int64               `json:"totalEventCount"`
	MostFrequentBehaviorLabel string              `json:"mostFrequentBehaviorLabel"`
	TotalMonitoredSeconds     int64               `json:"totalMonitoredSeconds"`
	Behaviors                 []BehaviorAggregate `json:"behaviors"`
	Heatmap                   []HeatmapCell       `json:"heatmap"`
}
