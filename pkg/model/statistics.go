package model

import (
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes how a timetable spreads its sessions over faculty, rooms and slots
type Statistics struct {
	FacultyLoad      map[string]int     `json:"facultyLoad"` // Sessions per faculty id
	LoadMean         float64            `json:"loadMean"`
	LoadStdDev       float64            `json:"loadStdDev"`
	RoomUtilization  map[string]float64 `json:"roomUtilization"` // Occupied slots over grid size, per room id
	RequiredSessions int                `json:"requiredSessions"`
	PlacedSessions   int                `json:"placedSessions"`
	Coverage         float64            `json:"coverage"` // Percentage of required sessions placed
	ConflictsByType  map[string]int     `json:"conflictsByType"`
	PeakSlot         TimeSlot           `json:"peakSlot"`
	PeakSessions     int                `json:"peakSessions"`
}

// ComputeStatistics describes a timetable against the catalog it was built from. Every faculty member and room
// of the catalog is reported, including those left idle
func ComputeStatistics(timetable GeneratedTimetable, modelInput ModelInput) Statistics {
	indexer := newSlotIndexer(GenerateTimeSlots(modelInput.Institution))

	//** Faculty load
	facultyLoad := lo.SliceToMap(modelInput.Faculty, func(member Faculty) (string, int) { return member.Id, 0 })
	for facultyId, sessions := range lo.CountValuesBy(timetable.Entries, func(entry TimetableEntry) string { return entry.Faculty.Id }) {
		facultyLoad[facultyId] = sessions
	}
	facultyIds := lo.Keys(facultyLoad)
	slices.Sort(facultyIds) // Stable summation order
	loads := lo.Map(facultyIds, func(facultyId string, _ int) float64 { return float64(facultyLoad[facultyId]) })
	var loadMean, loadStdDev float64
	if len(loads) > 0 {
		loadMean, loadStdDev = stat.PopMeanStdDev(loads, nil)
	}

	//** Room utilization
	occupied := lo.CountValuesBy(timetable.Entries, func(entry TimetableEntry) string { return entry.Room.Id })
	roomUtilization := lo.SliceToMap(modelInput.Rooms, func(room Room) (string, float64) {
		if indexer.Len() == 0 {
			return room.Id, 0
		}
		return room.Id, float64(occupied[room.Id]) / float64(indexer.Len())
	})

	//** Coverage
	required := requiredSessions(modelInput.Batches, normalizeSessions(modelInput.Subjects))
	var coverage float64
	if required > 0 {
		coverage = 100 * float64(len(timetable.Entries)) / float64(required)
	}

	//** Peak slot
	slotLoad := make([]int, indexer.Len())
	for _, entry := range timetable.Entries {
		if slot, ok := indexer.Index(entry.TimeSlot.Day, entry.TimeSlot.Period); ok {
			slotLoad[slot]++
		}
	}
	statistics := Statistics{
		FacultyLoad:      facultyLoad,
		LoadMean:         loadMean,
		LoadStdDev:       loadStdDev,
		RoomUtilization:  roomUtilization,
		RequiredSessions: required,
		PlacedSessions:   len(timetable.Entries),
		Coverage:         coverage,
		ConflictsByType:  countConflicts(timetable.Conflicts),
	}
	for slot, sessions := range slotLoad {
		if sessions > statistics.PeakSessions {
			statistics.PeakSlot = indexer.Attributes(slot)
			statistics.PeakSessions = sessions
		}
	}
	return statistics
}
