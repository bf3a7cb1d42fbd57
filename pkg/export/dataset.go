package export

import (
	"errors"
	"strconv"

	"github.com/samber/lo"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

var ErrEmptyDataset = errors.New("dataset requires at least one header")

// Columns of an exported timetable
const (
	DayColumn     = "Day"
	PeriodColumn  = "Period"
	SubjectColumn = "Subject"
	FacultyColumn = "Faculty"
	RoomColumn    = "Room"
	BatchColumn   = "Batch"
)

// Dataset is tabular export content. Rows are keyed by header
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Records lays every row out in header order. Cells a row lacks are left empty
func (data Dataset) Records() [][]string {
	return lo.Map(data.Rows, func(row map[string]string, _ int) []string {
		return lo.Map(data.Headers, func(header string, _ int) string { return row[header] })
	})
}

// FromTimetable lays out one row per entry, in placement order. Subjects are shown by code, the rest by name
func FromTimetable(timetable model.GeneratedTimetable) Dataset {
	return Dataset{
		Headers: []string{DayColumn, PeriodColumn, SubjectColumn, FacultyColumn, RoomColumn, BatchColumn},
		Rows: lo.Map(timetable.Entries, func(entry model.TimetableEntry, _ int) map[string]string {
			return map[string]string{
				DayColumn:     entry.TimeSlot.Day,
				PeriodColumn:  strconv.Itoa(entry.TimeSlot.Period),
				SubjectColumn: entry.Subject.Code,
				FacultyColumn: entry.Faculty.Name,
				RoomColumn:    entry.Room.Name,
				BatchColumn:   entry.Batch.Name,
			}
		}),
	}
}
