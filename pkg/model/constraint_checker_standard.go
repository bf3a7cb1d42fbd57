package model

import (
	"fmt"

	"github.com/samber/lo"
)

type constraintCheckerStandard struct {
	newId func() string
}

func (checker *constraintCheckerStandard) Check(candidate TimetableEntry, placed []TimetableEntry) []Conflict {
	conflicts := make([]Conflict, 0)

	// Faculty clash
	if clash, ok := checker.findClash(candidate, placed, func(entry TimetableEntry) bool {
		return entry.Faculty.Id == candidate.Faculty.Id
	}); ok {
		conflicts = append(conflicts, Conflict{
			Id:              checker.conflictId("faculty-clash"),
			Type:            FacultyClash,
			Description:     fmt.Sprintf("Faculty %v is already assigned to %v", candidate.Faculty.Name, clash.Subject.Name),
			Severity:        High,
			AffectedEntries: []string{candidate.Id, clash.Id},
			Suggestions:     []string{"Assign different faculty", "Change time slot"},
		})
	}

	// Room clash
	if clash, ok := checker.findClash(candidate, placed, func(entry TimetableEntry) bool {
		return entry.Room.Id == candidate.Room.Id
	}); ok {
		conflicts = append(conflicts, Conflict{
			Id:              checker.conflictId("room-clash"),
			Type:            RoomClash,
			Description:     fmt.Sprintf("Room %v is already occupied by %v", candidate.Room.Name, clash.Subject.Name),
			Severity:        High,
			AffectedEntries: []string{candidate.Id, clash.Id},
			Suggestions:     []string{"Assign different room", "Change time slot"},
		})
	}

	// Batch clash
	if clash, ok := checker.findClash(candidate, placed, func(entry TimetableEntry) bool {
		return entry.Batch.Id == candidate.Batch.Id
	}); ok {
		conflicts = append(conflicts, Conflict{
			Id:              checker.conflictId("batch-clash"),
			Type:            BatchClash,
			Description:     fmt.Sprintf("Batch %v already has %v", candidate.Batch.Name, clash.Subject.Name),
			Severity:        High,
			AffectedEntries: []string{candidate.Id, clash.Id},
			Suggestions:     []string{"Change time slot", "Split batch"},
		})
	}

	// Room capacity
	if !fits(candidate.Batch, candidate.Room) {
		conflicts = append(conflicts, Conflict{
			Id:              checker.conflictId("capacity"),
			Type:            ConstraintViolation,
			Description:     fmt.Sprintf("Room capacity (%d) insufficient for batch size (%d)", candidate.Room.Capacity, candidate.Batch.Size),
			Severity:        High,
			AffectedEntries: []string{candidate.Id},
			Suggestions:     []string{"Assign larger room", "Split batch"},
		})
	}

	return conflicts
}

// Returns the first placed entry that shares the candidate's (day, period) cell and satisfies the predicate
func (checker *constraintCheckerStandard) findClash(candidate TimetableEntry, placed []TimetableEntry, shares func(entry TimetableEntry) bool) (TimetableEntry, bool) {
	return lo.Find(placed, func(entry TimetableEntry) bool {
		return entry.TimeSlot.SameSlot(candidate.TimeSlot) && shares(entry)
	})
}

func (checker *constraintCheckerStandard) conflictId(prefix string) string {
	return fmt.Sprintf("%v-%v", prefix, checker.newId())
}

// Checks whether the batch's size is smaller than or equal to the room's capacity (i.e. the batch fits in the room)
func fits(batch StudentBatch, room Room) bool {
	return room.Capacity >= batch.Size
}
