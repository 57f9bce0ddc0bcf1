package model

import (
	"time"
)

// Event is the canonical form of one behavior observation after
// normalization. Instants are UTC; DurationSeconds is never negative.
type Event struct {
	Id                   string         `json:"id"`
	BehaviorLabel        string         `json:"behaviorLabel"`
	RawBehaviorCode      string         `json:"rawBehaviorCode,omitempty"`
	StartInstant         time.Time      `json:"startInstant"`
	EndInstant           time.Time      `json:"endInstant"`
	DurationSeconds      int64          `json:"durationSeconds"`
	CameraSource         string         `json:"cameraSource"`
	VideoUrl             string         `json:"videoUrl,omitempty"`
	RawVideoUrl          string         `json:"rawVideoUrl,omitempty"`
	ThumbnailUrl         string         `json:"thumbnailUrl,omitempty"`
	ConfidenceScore      float64        `json:"confidenceScore"`
	EnvironmentalContext map[string]any `json:"environmentalContext,omitempty"`
}
