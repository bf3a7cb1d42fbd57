package model

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidTransition = errors.New("invalid status transition")

var transitions = map[TimetableStatus][]TimetableStatus{
	Draft:       {UnderReview, Approved},
	UnderReview: {Approved, Draft},
	Approved:    {Published},
}

// CanTransition checks whether a timetable in the current status may move to the next one
func CanTransition(current, next TimetableStatus) bool {
	return slices.Contains(transitions[current], next)
}

// Transition returns a copy of the timetable moved to the next status
func Transition(timetable GeneratedTimetable, next TimetableStatus) (GeneratedTimetable, error) {
	if !CanTransition(timetable.Status, next) {
		return GeneratedTimetable{}, fmt.Errorf("%w: from \"%v\" to \"%v\"", ErrInvalidTransition, timetable.Status, next)
	}
	timetable.Status = next
	return timetable, nil
}

// ParseStatus maps a status name, as shown to reviewers, to its TimetableStatus
func ParseStatus(name string) (TimetableStatus, error) {
	status := TimetableStatus(name)
	if !slices.Contains([]TimetableStatus{Draft, UnderReview, Approved, Published}, status) {
		return "", fmt.Errorf("unknown status \"%v\"", name)
	}
	return status, nil
}
