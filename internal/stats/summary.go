package stats

import (
	"time"

	"ethograph/internal/model"
)

// Aggregator derives dashboard statistics from normalized events. The
// only injected dependency is the zoo's display timezone, which decides
// the hour-of-day bucket of each event.
type Aggregator struct {
	loc *time.Location
}

func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{loc: loc}
}

// Summarize walks the event list once and builds the full dashboard
// summary: per-label aggregates in first-encounter order, the
// most-frequent label (first seen wins ties), the grand total of
// monitored seconds, and a complete labels-by-24-hours heatmap grid.
func (a *Aggregator) Summarize(events []*model.Event) *model.DashboardSummary {
	order := make([]string, 0)
	index := make(map[string]int)
	aggs := make([]model.BehaviorAggregate, 0)
	var grandTotal int64

	for _, ev := range events {
		i, seen := index[ev.BehaviorLabel]
		if !seen {
			i = len(aggs)
			index[ev.BehaviorLabel] = i
			order = append(order, ev.BehaviorLabel)
			aggs = append(aggs, model.BehaviorAggregate{BehaviorLabel: ev.BehaviorLabel})
		}
		agg := &aggs[i]
		agg.Count++
		agg.TotalDurationSeconds += ev.DurationSeconds
		if ev.DurationSeconds > 0 {
			if agg.MinDurationSeconds == 0 || ev.DurationSeconds < agg.MinDurationSeconds {
				agg.MinDurationSeconds = ev.DurationSeconds
			}
			if ev.DurationSeconds > agg.MaxDurationSeconds {
				agg.MaxDurationSeconds = ev.DurationSeconds
			}
		}
		grandTotal += ev.DurationSeconds
	}

	mostFrequent := ""
	var bestCount int64
	for i := range aggs {
		agg := &aggs[i]
		if agg.Count > 0 {
			agg.AverageDurationSeconds = float64(agg.TotalDurationSeconds) / float64(agg.Count)
		}
		if grandTotal > 0 {
			agg.PercentageOfTotal = float64(agg.TotalDurationSeconds) / float64(grandTotal) * 100
		}
		if agg.Count > bestCount {
			bestCount = agg.Count
			mostFrequent = agg.BehaviorLabel
		}
	}

	return &model.DashboardSummary{
		TotalEventCount:           int64(len(events)),
		MostFrequentBehaviorLabel: mostFrequent,
		TotalMonitoredSeconds:     grandTotal,
		Behaviors:                 aggs,
		Heatmap:                   a.heatmap(order, index, events),
	}
}

// heatmap materializes every (label, hour) cell, zeros included, so the
// chart renders a rectangular grid without client-side gap filling.
func (a *Aggregator) heatmap(order []string, index map[string]int, events []*model.Event) []model.HeatmapCell {
	cells := make([]model.HeatmapCell, len(order)*24)
	for i, label := range order {
		for h := 0; h < 24; h++ {
			cells[i*24+h] = model.HeatmapCell{BehaviorLabel: label, HourOfDay: h}
		}
	}
	for _, ev := range events {
		h := ev.StartInstant.In(a.loc).Hour()
		cell := &cells[index[ev.BehaviorLabel]*24+h]
		cell.Count++
		cell.DurationSeconds += ev.DurationSeconds
	}
	return cells
}
