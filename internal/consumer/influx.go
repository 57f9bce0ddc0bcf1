package consumer

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"ethograph/internal/model"
	"ethograph/internal/normalize"
)

const trendMeasurement = "ethograph_event"

var animalKeys = []string{"animal_id", "animalId", "AnimalId", "animal", "subject_id"}

// writeTrendPoints stores one point per normalized event so the trends
// API can aggregate live activity later. Records and events run in
// lockstep: only non-object records get skipped during normalization,
// so each object record pairs with the next event.
func (c *Consumer) writeTrendPoints(records []any, events []*model.Event) {
	ctx, cancel := context.WithTimeout(c.ctx, 10*time.Second)
	defer cancel()

	pts := make([]*write.Point, 0, len(events))
	j := 0
	for _, raw := range records {
		var rec normalize.RawRecord
		switch v := raw.(type) {
		case normalize.RawRecord:
			rec = v
		case map[string]any:
			rec = normalize.RawRecord(v)
		default:
			continue
		}
		if j >= len(events) {
			break
		}
		ev := events[j]
		j++

		pts = append(pts, influxdb2.NewPoint(trendMeasurement,
			map[string]string{
				"animal":   rec.StringField("unknown", animalKeys...),
				"behavior": ev.BehaviorLabel,
				"camera":   ev.CameraSource,
			},
			map[string]interface{}{
				"duration":   ev.DurationSeconds,
				"confidence": ev.ConfidenceScore,
			},
			ev.StartInstant))
	}
	if len(pts) == 0 {
		return
	}

	if err := c.influxWrite.WritePoint(ctx, pts...); err != nil {
		c.logger.WithError(err).Error("write trend points failed")
	}
}
