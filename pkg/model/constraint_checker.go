package model

import "github.com/google/uuid"

type constraintChecker interface {
	// Reports every hard rule the candidate violates against the already placed entries, in the following order:
	// faculty clash, room clash, batch clash and room capacity. At most one conflict is reported per rule
	Check(candidate TimetableEntry, placed []TimetableEntry) []Conflict
}

func newConstraintChecker(newId func() string) constraintChecker {
	return &constraintCheckerStandard{newId: newId}
}

// CheckHardConstraints reports the hard-rule violations a candidate entry would introduce into the placed set.
// Neither the candidate nor the placed entries are modified
func CheckHardConstraints(candidate TimetableEntry, placed []TimetableEntry) []Conflict {
	return newConstraintChecker(uuid.NewString).Check(candidate, placed)
}
