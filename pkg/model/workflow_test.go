package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	scenarios := []struct {
		from, to TimetableStatus
		allowed  bool
	}{
		{Draft, UnderReview, true},
		{Draft, Approved, true},
		{UnderReview, Approved, true},
		{UnderReview, Draft, true},
		{Approved, Published, true},
		{Draft, Published, false},
		{Draft, Draft, false},
		{UnderReview, Published, false},
		{Approved, Draft, false},
		{Published, Draft, false},
		{Published, Approved, false},
	}

	for _, scenario := range scenarios {
		timetable := GeneratedTimetable{Id: "timetable-1", Status: scenario.from}

		next, err := Transition(timetable, scenario.to)

		assert.Equal(t, scenario.allowed, CanTransition(scenario.from, scenario.to))
		if scenario.allowed {
			require.NoError(t, err)
			assert.Equal(t, scenario.to, next.Status)
			assert.Equal(t, "timetable-1", next.Id)
			assert.Equal(t, scenario.from, timetable.Status)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("Under Review")
	require.NoError(t, err)
	assert.Equal(t, UnderReview, status)

	_, err = ParseStatus("Archived")
	assert.Error(t, err)
}
