package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

type verification struct {
	Valid      bool             `json:"valid"`
	Statistics model.Statistics `json:"statistics"`
}

func newVerifyCmd(application *app) *cobra.Command {
	var (
		timetableFile string
		inputFile     string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a timetable against its catalog and print its statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			timetable, err := readTimetable(timetableFile)
			if err != nil {
				return err
			}
			input, err := model.InputFromFile(inputFile)
			if err != nil {
				return err
			}

			result := verification{
				Valid:      model.NewGreedyTimetabler(application.logger, nil).Verify(timetable, input),
				Statistics: model.ComputeStatistics(timetable, input),
			}
			resultJson, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("an error occurred while building output json: %w", err)
			}
			if err := writeOutput(cmd, "", append(resultJson, '\n')); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("timetable %v violates hard constraints", timetable.Id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&timetableFile, "timetable", "t", "", "generated timetable (JSON)")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "catalog the timetable was generated from (JSON or YAML)")
	_ = cmd.MarkFlagRequired("timetable")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
