package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/timetable-engine/pkg/metrics"
	"github.com/limaJavier/timetable-engine/pkg/model"
)

func newGenerateCmd(application *app) *cobra.Command {
	var (
		inputFile   string
		outFile     string
		metricsFile string
		batches     []string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a draft timetable from a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			input, err := model.InputFromFile(inputFile)
			if err != nil {
				return err
			}
			if len(batches) > 0 {
				if input, err = input.WithBatches(batches...); err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("metrics-file") {
				metricsFile = application.cfg.Metrics.Textfile
			}
			var recorder metrics.Recorder = metrics.NopRecorder{}
			registry := prometheus.NewRegistry()
			if metricsFile != "" {
				if recorder, err = metrics.NewPromRecorder(registry); err != nil {
					return fmt.Errorf("register metrics: %w", err)
				}
			}

			timetabler := model.NewGreedyTimetabler(application.logger, recorder)
			timetable, err := timetabler.Build(input, application.cfg.Optimization)
			if err != nil {
				return err
			}
			if !timetabler.Verify(timetable, input) {
				return fmt.Errorf("generated timetable violates hard constraints")
			}

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
				application.logger.Debug("metrics written", zap.String("file", metricsFile))
			}

			timetableJson, err := json.MarshalIndent(timetable, "", "  ")
			if err != nil {
				return fmt.Errorf("an error occurred while building output json: %w", err)
			}
			return writeOutput(cmd, outFile, append(timetableJson, '\n'))
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "catalog file (JSON or YAML)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "file where the timetable is written; standard output when empty")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "node-exporter textfile where run metrics are written")
	cmd.Flags().StringSliceVarP(&batches, "batch", "b", nil, "restrict the run to these batch ids")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
