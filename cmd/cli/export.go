package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/limaJavier/timetable-engine/pkg/export"
)

func newExportCmd(application *app) *cobra.Command {
	var (
		timetableFile string
		outFile       string
		format        string
		title         string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a generated timetable as CSV or PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			timetable, err := readTimetable(timetableFile)
			if err != nil {
				return err
			}

			if format == "" {
				format = application.cfg.Export.Format
			}
			exporter, err := export.New(export.Format(strings.ToLower(format)))
			if err != nil {
				return err
			}

			if title == "" {
				title = application.cfg.Export.Title
			}
			if title == "" {
				title = timetable.Name
			}

			document, err := exporter.Render(export.FromTimetable(timetable), title)
			if err != nil {
				return err
			}
			return writeOutput(cmd, outFile, document)
		},
	}

	cmd.Flags().StringVarP(&timetableFile, "timetable", "t", "", "generated timetable (JSON)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "file where the document is written; standard output when empty")
	cmd.Flags().StringVarP(&format, "format", "f", "", "csv or pdf; defaults to the configured format")
	cmd.Flags().StringVar(&title, "title", "", "document title; defaults to the configured title or the timetable name")
	_ = cmd.MarkFlagRequired("timetable")
	return cmd
}
