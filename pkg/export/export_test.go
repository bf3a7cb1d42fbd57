package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

func sampleTimetable() model.GeneratedTimetable {
	entry := func(day string, period int, subject string) model.TimetableEntry {
		return model.TimetableEntry{
			Subject:  model.Subject{Id: subject, Code: subject, Name: "Subject " + subject},
			Faculty:  model.Faculty{Id: "f1", Name: "Dr. Rao"},
			Room:     model.Room{Id: "r1", Name: "A-101"},
			Batch:    model.StudentBatch{Id: "b1", Name: "CSE 1A"},
			TimeSlot: model.TimeSlot{Day: day, Period: period},
		}
	}
	return model.GeneratedTimetable{
		Name:    "Generated Timetable 2024-03-04",
		Entries: []model.TimetableEntry{entry("Monday", 1, "CS101"), entry("Monday", 2, "MA101")},
	}
}

func TestFromTimetable(t *testing.T) {
	data := FromTimetable(sampleTimetable())

	assert.Equal(t, []string{"Day", "Period", "Subject", "Faculty", "Room", "Batch"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, map[string]string{
		"Day":     "Monday",
		"Period":  "2",
		"Subject": "MA101",
		"Faculty": "Dr. Rao",
		"Room":    "A-101",
		"Batch":   "CSE 1A",
	}, data.Rows[1])
}

func TestDatasetRecords(t *testing.T) {
	data := Dataset{
		Headers: []string{"Day", "Period", "Room"},
		Rows:    []map[string]string{{"Room": "A-101", "Day": "Monday", "Period": "1"}, {"Day": "Tuesday"}},
	}

	assert.Equal(t, [][]string{{"Monday", "1", "A-101"}, {"Tuesday", "", ""}}, data.Records())
}

func TestCsvExporterRender(t *testing.T) {
	out, err := NewCsvExporter().Render(FromTimetable(sampleTimetable()), "ignored")
	require.NoError(t, err)

	assert.Equal(t, "Day,Period,Subject,Faculty,Room,Batch\n"+
		"Monday,1,CS101,Dr. Rao,A-101,CSE 1A\n"+
		"Monday,2,MA101,Dr. Rao,A-101,CSE 1A\n", string(out))
}

func TestCsvExporterQuotesFields(t *testing.T) {
	out, err := NewCsvExporter().Render(Dataset{
		Headers: []string{"Faculty"},
		Rows:    []map[string]string{{"Faculty": "Rao, K."}},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "Faculty\n\"Rao, K.\"\n", string(out))
}

func TestPdfExporterRender(t *testing.T) {
	timetable := sampleTimetable()
	for range 100 {
		timetable.Entries = append(timetable.Entries, timetable.Entries[0])
	}

	out, err := NewPdfExporter().Render(FromTimetable(timetable), timetable.Name)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderEmptyDataset(t *testing.T) {
	for _, format := range []Format{CSV, PDF} {
		exporter, err := New(format)
		require.NoError(t, err)

		_, err = exporter.Render(Dataset{}, "")
		assert.ErrorIs(t, err, ErrEmptyDataset)
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	_, err := New("xlsx")
	assert.Error(t, err)
}
