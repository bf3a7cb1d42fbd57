package model

import (
	"slices"

	"github.com/samber/lo"
)

func verify(timetable GeneratedTimetable, modelInput ModelInput) bool {
	//** Initialize dependencies
	indexer := newSlotIndexer(GenerateTimeSlots(modelInput.Institution))
	subjects := indexSubjects(normalizeSessions(modelInput.Subjects))

	//** Initialize assistances
	facultyAssistance := make(map[string][]bool)
	roomAssistance := make(map[string][]bool)
	batchAssistance := make(map[string][]bool)

	//** Initialize owed and derived sessions
	owedSessions := make(map[[2]string]int)
	for _, batch := range modelInput.Batches {
		for _, subjectId := range owedSubjects(batch, modelInput.Subjects) {
			owedSessions[[2]string{batch.Id, subjectId}] += subjects[subjectId].SessionsPerWeek
		}
	}
	derivedSessions := make(map[[2]string]int)

	for _, entry := range timetable.Entries {
		slot, ok := indexer.Index(entry.TimeSlot.Day, entry.TimeSlot.Period)
		_, known := subjects[entry.Subject.Id]
		sessionKey := [2]string{entry.Batch.Id, entry.Subject.Id}

		// Check that:
		// - The entry sits on a cell of the institution's grid
		// - The subject belongs to the catalog
		// - Faculty is eligible to teach the subject
		// - Batch fits in room
		// - Faculty, room and batch are not already assisting in the period and day
		// - The batch does not receive more sessions of the subject than it owes (credits times the number of times
		//   the subject is listed)
		if !ok ||
			!known ||
			!slices.Contains(entry.Faculty.EligibleSubjects, entry.Subject.Id) ||
			!fits(entry.Batch, entry.Room) ||
			!reserve(facultyAssistance, entry.Faculty.Id, slot, indexer.Len()) ||
			!reserve(roomAssistance, entry.Room.Id, slot, indexer.Len()) ||
			!reserve(batchAssistance, entry.Batch.Id, slot, indexer.Len()) ||
			derivedSessions[sessionKey] >= owedSessions[sessionKey] {
			return false
		}

		derivedSessions[sessionKey]++ // Store session taught
	}
	return true
}

// Marks the slot as taken by the resource, returning false when it was already taken
func reserve(assistance map[string][]bool, resource string, slot, slots int) bool {
	if _, ok := assistance[resource]; !ok {
		assistance[resource] = make([]bool, slots)
	}
	if assistance[resource][slot] {
		return false
	}
	assistance[resource][slot] = true
	return true
}

// Returns a copy of the subjects where the number of sessions per week equals the number of credits
func normalizeSessions(subjects []Subject) []Subject {
	return lo.Map(subjects, func(subject Subject, _ int) Subject {
		subject.SessionsPerWeek = subject.Credits
		return subject
	})
}

// Indexes subjects by id, keeping the first subject when ids repeat
func indexSubjects(subjects []Subject) map[string]Subject {
	subjectsById := make(map[string]Subject, len(subjects))
	for _, subject := range subjects {
		if _, ok := subjectsById[subject.Id]; !ok {
			subjectsById[subject.Id] = subject
		}
	}
	return subjectsById
}

// Returns the ids of the subjects a batch must attend: its mandatory subjects, or every subject when it declares none
func owedSubjects(batch StudentBatch, subjects []Subject) []string {
	if len(batch.MandatorySubjects) > 0 {
		return batch.MandatorySubjects
	}
	return lo.Map(subjects, func(subject Subject, _ int) string { return subject.Id })
}

func eligibleFaculty(faculty []Faculty, subject Subject) []Faculty {
	return lo.Filter(faculty, func(member Faculty, _ int) bool {
		return slices.Contains(member.EligibleSubjects, subject.Id)
	})
}

// Returns the rooms the batch fits in. When none fits every room is returned, so that the search still reports
// the capacity violations, and fitting is false. Room type and equipment are ignored
func suitableRooms(rooms []Room, batch StudentBatch) (candidates []Room, fitting bool) {
	candidates = lo.Filter(rooms, func(room Room, _ int) bool {
		return fits(batch, room)
	})
	if len(candidates) > 0 {
		return candidates, true
	}
	return rooms, false
}

func unscheduledReason(timeSlots []TimeSlot, faculty []Faculty, rooms []Room, fitting bool) UnscheduledReason {
	switch {
	case len(timeSlots) == 0:
		return NoTimeSlot
	case len(faculty) == 0:
		return NoEligibleFaculty
	case len(rooms) == 0:
		return NoRoom
	case !fitting:
		return NoFittingRoom
	default:
		return NoConflictFreeSlot
	}
}

// Returns the number of sessions owed by every batch, skipping subjects missing from the catalog
func requiredSessions(batches []StudentBatch, subjects []Subject) int {
	subjectsById := indexSubjects(subjects)
	return lo.SumBy(batches, func(batch StudentBatch) int {
		return lo.SumBy(owedSubjects(batch, subjects), func(subjectId string) int {
			return max(subjectsById[subjectId].SessionsPerWeek, 0)
		})
	})
}

func countConflicts(conflicts []Conflict) map[string]int {
	return lo.CountValuesBy(conflicts, func(conflict Conflict) string { return string(conflict.Type) })
}
