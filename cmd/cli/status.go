package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

func newStatusCmd(application *app) *cobra.Command {
	var (
		timetableFile string
		outFile       string
		next          string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Move a timetable through review: Draft, Under Review, Approved, Published",
		RunE: func(cmd *cobra.Command, args []string) error {
			timetable, err := readTimetable(timetableFile)
			if err != nil {
				return err
			}
			if next == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), timetable.Status)
				return err
			}

			status, err := model.ParseStatus(next)
			if err != nil {
				return err
			}
			updated, err := model.Transition(timetable, status)
			if err != nil {
				return err
			}
			application.logger.Info("timetable status changed",
				zap.String("id", timetable.Id),
				zap.String("from", string(timetable.Status)),
				zap.String("to", string(updated.Status)),
			)

			timetableJson, err := json.MarshalIndent(updated, "", "  ")
			if err != nil {
				return fmt.Errorf("an error occurred while building output json: %w", err)
			}
			if outFile == "" {
				outFile = timetableFile
			}
			return writeOutput(cmd, outFile, append(timetableJson, '\n'))
		},
	}

	cmd.Flags().StringVarP(&timetableFile, "timetable", "t", "", "generated timetable (JSON)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "file where the updated timetable is written; the timetable file itself when empty")
	cmd.Flags().StringVar(&next, "to", "", "target status; the current status is printed when empty")
	_ = cmd.MarkFlagRequired("timetable")
	return cmd
}
