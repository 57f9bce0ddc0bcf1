package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ethograph/internal/dao"
	"ethograph/internal/model"
	"ethograph/internal/normalize"
	"ethograph/internal/stats"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Tools for ethograph",
	Long:  `Various tools and utilities for the ethograph backend.`,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the API models",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		}
		schemas := map[string]any{
			"event":   reflector.Reflect(&model.Event{}),
			"summary": reflector.Reflect(&model.DashboardSummary{}),
			"report":  reflector.Reflect(&dao.ReportResponse{}),
			"chat":    reflector.Reflect(&dao.ChatRequest{}),
		}
		out, err := json.MarshalIndent(schemas, "", "  ")
		if err != nil {
			logrus.Fatalf("Failed to marshal schemas: %v", err)
		}
		fmt.Println(string(out))
	},
}

var (
	normalizeInput    string
	normalizeTimezone string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a captured pipeline payload",
	Long: `Read a raw pipeline response from a JSON file, run it through
unwrapping and normalization, and print the events and summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(normalizeInput)
		if err != nil {
			logrus.Fatalf("Failed to read input: %v", err)
		}
		var payload any
		if err := json.Unmarshal(data, &payload); err != nil {
			logrus.Fatalf("Input is not valid JSON: %v", err)
		}

		loc := time.UTC
		if normalizeTimezone != "" {
			loc, err = time.LoadLocation(normalizeTimezone)
			if err != nil {
				logrus.Fatalf("Invalid timezone: %v", err)
			}
		}

		records, env := normalize.UnwrapRecords(payload)
		events, report := normalize.Events(records)
		summary := stats.NewAggregator(loc).Summarize(events)

		out, err := json.MarshalIndent(map[string]any{
			"envelope": env,
			"report":   report,
			"events":   events,
			"summary":  summary,
		}, "", "  ")
		if err != nil {
			logrus.Fatalf("Failed to marshal result: %v", err)
		}
		fmt.Println(string(out))
	},
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInput, "input", "i", "payload.json", "Input JSON file path")
	normalizeCmd.Flags().StringVar(&normalizeTimezone, "timezone", "UTC", "IANA timezone for hour-of-day buckets")

	toolsCmd.AddCommand(schemaCmd)
	toolsCmd.AddCommand(normalizeCmd)
}
