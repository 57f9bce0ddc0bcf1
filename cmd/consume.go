package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ethograph/internal/consumer"
)

var consumeChannel string

var consumeCommand = &cobra.Command{
	Use:   "consume",
	Short: "Tail the live behavior event stream",
	Long:  `Connect to NSQ and log normalized behavior events as they arrive.`,
	Run: func(cmd *cobra.Command, args []string) {
		conf, err := consumer.LoadConfig(configFile)
		if err != nil {
			logrus.Fatal("initConfig error, ", err.Error())
		}

		c, err := consumer.NewConsumer(conf, consumeChannel, nil, nil)
		if err != nil {
			logrus.Fatalf("Failed to create consumer: %v", err)
		}
		if err := c.Start(); err != nil {
			logrus.Fatalf("Failed to start consumer: %v", err)
		}

		termChan := make(chan os.Signal, 1)
		signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

		<-termChan
		logrus.Infof("consumer is shutting down...")
		c.Stop()
	},
}

func init() {
	// The ephemeral channel keeps the tail from stealing messages off a
	// running server's channel.
	consumeCommand.Flags().StringVar(&consumeChannel, "channel", "tail#ephemeral", "NSQ channel to consume on")
}
