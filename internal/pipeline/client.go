package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"ethograph/internal/config"
	"ethograph/internal/model"
	"ethograph/internal/normalize"
	"ethograph/internal/observability"
	"ethograph/pkg/log"
)

// Window is one fetched and normalized (animal, date range) slice of
// the upstream timeline, the unit the dashboard caches and serves.
type Window struct {
	AnimalId  string             `json:"animalId"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Envelope  normalize.Envelope `json:"envelope"`
	Report    normalize.Report   `json:"report"`
	Events    []*model.Event     `json:"events"`
}

// Client reads the behavior-recognition pipeline's REST API. Upstream
// failures surface to the caller untouched; there are no retries here.
type Client struct {
	conf    config.PipelineConfig
	httpCli *http.Client
	metrics *observability.Metrics
	logger  *logrus.Entry
}

func NewClient(ctx context.Context, conf config.PipelineConfig, metrics *observability.Metrics) *Client {
	timeout := time.Duration(conf.Timeout) * time.Second
	if conf.Timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		conf: conf,
		httpCli: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		metrics: metrics,
		logger:  log.WithComponent(ctx, "pipeline"),
	}
}

// FetchWindow pulls the raw behavior list for one animal and date range
// and runs it through unwrapping and normalization. Unrecognized
// payload shapes and malformed records degrade to an empty or partial
// window with diagnostics, never an error; only transport, status and
// JSON decode failures do.
func (c *Client) FetchWindow(ctx context.Context, animalId, startDate, endDate string) (*Window, error) {
	q := url.Values{}
	q.Set("animal_id", animalId)
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	endpoint := c.conf.BaseURL + "/api/behaviours?" + q.Encode()

	started := time.Now()
	payload, err := c.getJSON(ctx, endpoint)
	c.metrics.FetchObserved(time.Since(started), err == nil)
	if err != nil {
		return nil, err
	}

	records, env := normalize.UnwrapRecords(payload)
	events, report := normalize.Events(records)

	switch {
	case env.Shape == normalize.ShapeUnknown:
		c.metrics.UnknownShape()
		c.logger.Warnf("unrecognized payload shape for animal %s [%s..%s]", animalId, startDate, endDate)
	case env.Shape == normalize.ShapeErrorMarker && env.ErrorText != "":
		c.logger.Infof("pipeline reports no data for animal %s: %s", animalId, env.ErrorText)
	}
	if report.Skipped > 0 {
		c.logger.Warnf("skipped %d of %d records for animal %s", report.Skipped, report.Total, animalId)
	}
	c.metrics.NormalizationOutcome(report.Skipped, report.Fallbacks)

	return &Window{
		AnimalId:  animalId,
		StartDate: startDate,
		EndDate:   endDate,
		FetchedAt: time.Now().UTC(),
		Envelope:  env,
		Report:    report,
		Events:    events,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.conf.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.conf.APIKey)
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pipeline request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return payload, nil
}
