package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"

	"ethograph/internal/normalize"
	"ethograph/internal/observability"
	"ethograph/pkg/log"
)

// Consumer subscribes to the pipeline's live push stream and feeds
// normalized events into the dashboard's activity buffer. With a nil
// feed it degrades to a logging tail, which the consume command uses.
type Consumer struct {
	conf         *Config
	ctx          context.Context
	cancel       context.CancelFunc
	consumer     *nsq.Consumer
	feed         *Feed
	metrics      *observability.Metrics
	influxClient influxdb2.Client
	influxWrite  api.WriteAPIBlocking
	wg           sync.WaitGroup
	logger       *logrus.Entry
}

// NewConsumer creates a consumer on the configured topic. An empty
// channel falls back to the configured one; the tail command passes an
// ephemeral channel so it never steals messages from a running server.
func NewConsumer(conf *Config, channel string, feed *Feed, metrics *observability.Metrics) (*Consumer, error) {
	ctx, cancel := context.WithCancel(context.Background())

	logger := log.WithComponent(ctx, "consumer")

	config := nsq.NewConfig()
	config.MsgTimeout = time.Minute
	config.MaxInFlight = 10
	config.MaxAttempts = 2

	if channel == "" {
		channel = conf.NSQ.Channel
	}
	nsqConsumer, err := nsq.NewConsumer(conf.NSQ.Topic, channel, config)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	c := &Consumer{
		conf:     conf,
		ctx:      ctx,
		cancel:   cancel,
		consumer: nsqConsumer,
		feed:     feed,
		metrics:  metrics,
		logger:   logger,
	}

	if conf.InfluxDB.Enabled && conf.InfluxDB.URL != "" {
		c.influxClient = influxdb2.NewClient(conf.InfluxDB.URL, conf.InfluxDB.Token)
		c.influxWrite = c.influxClient.WriteAPIBlocking(conf.InfluxDB.Org, conf.InfluxDB.Bucket)
	}

	nsqConsumer.AddHandler(c)

	return c, nil
}

// HandleMessage normalizes one pushed payload. A message may carry a
// bare record, a record list, or the same wrapped shapes the fetch API
// returns. Junk payloads are dropped, not requeued: redelivery cannot
// fix them.
func (c *Consumer) HandleMessage(message *nsq.Message) error {
	c.logger.Debugf("received live message: %s", string(message.Body))
	message.DisableAutoResponse()

	var payload any
	if err := json.Unmarshal(message.Body, &payload); err != nil {
		c.logger.WithError(err).Error("failed to unmarshal live message")
		message.Finish()
		return nil
	}

	records, env := normalize.UnwrapRecords(payload)
	if env.Shape == normalize.ShapeUnknown {
		if rec, ok := payload.(map[string]any); ok {
			records = []any{rec}
		} else {
			c.metrics.UnknownShape()
			c.logger.Warn("unrecognized live payload shape")
			message.Finish()
			return nil
		}
	}

	events, report := normalize.Events(records)
	c.metrics.NormalizationOutcome(report.Skipped, report.Fallbacks)
	if report.Skipped > 0 {
		c.logger.Warnf("skipped %d of %d live records", report.Skipped, report.Total)
	}
	if len(events) > 0 {
		if c.feed != nil {
			c.feed.Push(events...)
		}
		if c.influxWrite != nil {
			c.writeTrendPoints(records, events)
		}
		c.metrics.LiveEvents(len(events))
		for _, ev := range events {
			c.logger.WithFields(logrus.Fields{
				"behavior": ev.BehaviorLabel,
				"camera":   ev.CameraSource,
				"start":    ev.StartInstant,
				"duration": ev.DurationSeconds,
			}).Info("live behavior event")
		}
	}

	message.Finish()
	return nil
}

func (c *Consumer) Start() error {
	c.logger.Info("Starting NSQ consumer...")

	err := c.consumer.ConnectToNSQDs(c.conf.NSQ.NSQDAddrs)
	if err != nil {
		return fmt.Errorf("failed to connect to NSQs: %w", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.ctx.Done()
		c.consumer.Stop()
	}()

	return nil
}

func (c *Consumer) Stop() {
	c.cancel()
	c.wg.Wait()
	if c.influxClient != nil {
		c.influxClient.Close()
	}
}
