package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ethograph/internal/config"
	"ethograph/internal/consumer"
	"ethograph/internal/observability"
	"ethograph/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start ethograph server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}

	logrus.Infof("config: %+v", conf)

	ctx, cancelFunc := context.WithCancel(context.Background())
	metrics := observability.NewMetrics()

	// The live consumer shares its feed with the server; without NSQ the
	// live endpoints serve empty responses.
	var feed *consumer.Feed
	var liveConsumer *consumer.Consumer
	consumerConf, err := consumer.LoadConfig(configFile)
	if err != nil {
		logrus.Fatal("load consumer config error, ", err.Error())
	}
	if consumerConf.NSQ.Enabled {
		feed = consumer.NewFeed(consumerConf.FeedSize)
		liveConsumer, err = consumer.NewConsumer(consumerConf, "", feed, metrics)
		if err != nil {
			logrus.Fatalf("newConsumer error, %s", err.Error())
		}
		if err := liveConsumer.Start(); err != nil {
			logrus.Fatalf("start consumer error, %s", err.Error())
		}
	}

	srv, err := server.NewServer(ctx, conf, feed, metrics)
	if err != nil {
		logrus.Fatalf("newServer error, %s", err.Error())
		cancelFunc()
		return
	}
	go srv.Start()

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("server is shutting down...")
	if liveConsumer != nil {
		liveConsumer.Stop()
	}
	srv.Shutdown()
	cancelFunc()
}
