package server

import (
	"context"
	goerrors "errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/sirupsen/logrus"

	_ "ethograph/docs"
	"ethograph/internal/cache"
	"ethograph/internal/config"
	"ethograph/internal/consumer"
	"ethograph/internal/media"
	"ethograph/internal/observability"
	"ethograph/internal/pipeline"
	"ethograph/internal/stats"
	"ethograph/pkg/log"
)

const httpXRequestId = "X-Request-Id"

type Server struct {
	conf        *config.Config
	httpServer  *http.Server
	pipeline    *pipeline.Client
	cache       *cache.Store
	agg         *stats.Aggregator
	feed        *consumer.Feed
	media       *media.Resolver
	metrics     *observability.Metrics
	influxCli   influxdb2.Client
	influxQuery api.QueryAPI
	logger      *logrus.Entry
}

// NewServer wires the dashboard backend together. feed may be nil when
// the live consumer is disabled; the live endpoints then serve empty
// responses.
func NewServer(ctx context.Context, conf *config.Config, feed *consumer.Feed, metrics *observability.Metrics) (*Server, error) {
	logger := log.GetLogger(ctx)

	loc, err := conf.Location()
	if err != nil {
		return nil, err
	}

	store, err := cache.Open(conf.Cache.Path, time.Duration(conf.Cache.TTL)*time.Second, logger)
	if err != nil {
		return nil, err
	}

	resolver, err := media.NewResolver(conf.S3)
	if err != nil {
		store.Close()
		return nil, err
	}

	s := &Server{
		conf:     conf,
		pipeline: pipeline.NewClient(ctx, conf.Pipeline, metrics),
		cache:    store,
		agg:      stats.NewAggregator(loc),
		feed:     feed,
		media:    resolver,
		metrics:  metrics,
		logger:   logger,
	}

	if conf.InfluxDB.Enabled && conf.InfluxDB.URL != "" {
		s.influxCli = influxdb2.NewClient(conf.InfluxDB.URL, conf.InfluxDB.Token)
		s.influxQuery = s.influxCli.QueryAPI(conf.InfluxDB.Org)
	}

	return s, nil
}

func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(httpXRequestId)
		if requestId == "" {
			requestId = strings.ReplaceAll(uuid.New().String(), "-", "")
		}
		c.Set(log.CtxRequestId, requestId)
		c.Header(httpXRequestId, requestId)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()
		c.Next()
		latency := time.Since(t)
		status := c.Writer.Status()

		logrus.Info("ip: ", c.ClientIP(), " method: ", c.Request.Method, " path: ",
			c.Request.URL.Path, " status: ", status, " latency: ", latency)
	}
}

func (s *Server) Start() {
	gin.SetMode(gin.ReleaseMode)
	router := s.SetUpRouter()
	pprof.Register(router)
	s.httpServer = &http.Server{
		Addr:    s.conf.Addr,
		Handler: router,
	}

	var err error
	if s.conf.SSLCert != "" && s.conf.SSLKey != "" {
		logrus.Infof("start https server on %s", s.conf.Addr)
		err = s.httpServer.ListenAndServeTLS(s.conf.SSLCert, s.conf.SSLKey)
	} else {
		logrus.Infof("start http server on %s", s.conf.Addr)
		err = s.httpServer.ListenAndServe()
	}
	if err != nil && !goerrors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}

func (s *Server) Shutdown() {
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}
	if s.influxCli != nil {
		s.influxCli.Close()
	}
	if err := s.cache.Close(); err != nil {
		logrus.Errorf("close cache failed: %v", err)
	}
}

type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func (s *Server) writeError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{
		Error: err.Error(),
	})
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
			matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, fl.Field().String())
			return matched
		})
	}
}
