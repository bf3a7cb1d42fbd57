package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

func readTimetable(file string) (model.GeneratedTimetable, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return model.GeneratedTimetable{}, fmt.Errorf("cannot read timetable file: %w", err)
	}

	var timetable model.GeneratedTimetable
	if err := json.Unmarshal(bytes, &timetable); err != nil {
		return model.GeneratedTimetable{}, fmt.Errorf("cannot parse timetable file: %w", err)
	}
	return timetable, nil
}

// Writes to the file, or to the command's standard output when the file is empty
func writeOutput(cmd *cobra.Command, file string, content []byte) error {
	if file == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}
	if err := os.WriteFile(file, content, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	return nil
}
