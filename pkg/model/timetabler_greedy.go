package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/limaJavier/timetable-engine/pkg/metrics"
)

type greedyTimetabler struct {
	checker  constraintChecker
	logger   *zap.Logger
	recorder metrics.Recorder
	newId    func() string
	now      func() time.Time
}

// NewGreedyTimetabler returns a first-fit timetabler: every session takes the first (slot, faculty, room)
// combination that violates no hard rule, and it is never reconsidered afterwards
func NewGreedyTimetabler(logger *zap.Logger, recorder metrics.Recorder) Timetabler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &greedyTimetabler{
		checker:  newConstraintChecker(uuid.NewString),
		logger:   logger,
		recorder: recorder,
		newId:    uuid.NewString,
		now:      time.Now,
	}
}

func (timetabler *greedyTimetabler) Build(modelInput ModelInput, settings OptimizationSettings) (GeneratedTimetable, error) {
	if err := settings.Validate(); err != nil {
		return GeneratedTimetable{}, fmt.Errorf("invalid optimization settings: %w", err)
	}
	startedAt := timetabler.now()
	timetabler.logger.Debug("optimization settings are not consulted by greedy placement",
		zap.Int("maxIterations", settings.MaxIterations),
		zap.Int("timeLimit", settings.TimeLimit),
	)

	//** Expand time grid
	timeSlots := GenerateTimeSlots(modelInput.Institution)
	if len(timeSlots) == 0 {
		timetabler.logger.Warn("time grid is empty, no session can be scheduled",
			zap.Int("workingDays", len(modelInput.Institution.WorkingDays)),
			zap.Int("periodTimings", len(modelInput.Institution.PeriodTimings)),
		)
	}

	//** Derive session counts from credits
	subjects := normalizeSessions(modelInput.Subjects)
	subjectsById := indexSubjects(subjects)

	entries := make([]TimetableEntry, 0)
	conflicts := make([]Conflict, 0)
	unscheduled := make([]UnscheduledSession, 0)

	for _, batch := range modelInput.Batches {
		for _, subjectId := range owedSubjects(batch, subjects) {
			logger := timetabler.logger.With(zap.String("batch", batch.Name), zap.String("subject", subjectId))

			subject, ok := subjectsById[subjectId]
			if !ok {
				logger.Warn("subject not found in catalog")
				unscheduled = append(unscheduled, UnscheduledSession{BatchId: batch.Id, SubjectId: subjectId, Reason: UnknownSubject})
				continue
			}

			faculty := eligibleFaculty(modelInput.Faculty, subject)
			if len(faculty) == 0 {
				logger.Warn("no eligible faculty")
			}
			rooms, fitting := suitableRooms(modelInput.Rooms, batch)
			if !fitting {
				logger.Warn("no suitable rooms by capacity", zap.Int("batchSize", batch.Size))
			}

			//** Schedule required sessions
			for session := range subject.SessionsPerWeek {
				entry, observed, scheduled := timetabler.place(subject, batch, timeSlots, faculty, rooms, entries)
				conflicts = append(conflicts, observed...)
				if scheduled {
					entries = append(entries, entry)
					continue
				}

				reason := unscheduledReason(timeSlots, faculty, rooms, fitting)
				logger.Warn("could not schedule session", zap.Int("session", session+1), zap.String("reason", string(reason)))
				unscheduled = append(unscheduled, UnscheduledSession{
					BatchId:   batch.Id,
					SubjectId: subject.Id,
					Session:   session + 1,
					Reason:    reason,
				})
			}
		}
	}

	timetable := GeneratedTimetable{
		Id:          fmt.Sprintf("timetable-%v", timetabler.newId()),
		Name:        fmt.Sprintf("Generated Timetable %v", startedAt.Format(time.DateOnly)),
		Entries:     entries,
		Conflicts:   conflicts,
		Unscheduled: unscheduled,
		Score:       Score(entries, modelInput.Batches, subjects),
		GeneratedAt: startedAt.UTC(),
		Status:      Draft,
	}

	elapsed := timetabler.now().Sub(startedAt)
	if err := timetabler.recorder.RecordRun(metrics.RunResult{
		Batches:          len(modelInput.Batches),
		RequiredSessions: requiredSessions(modelInput.Batches, subjects),
		Placed:           len(entries),
		Unscheduled:      len(unscheduled),
		Conflicts:        countConflicts(conflicts),
		Score:            timetable.Score,
		Duration:         elapsed,
	}); err != nil {
		timetabler.logger.Warn("cannot record scheduling run", zap.Error(err))
	}

	timetabler.logger.Info("timetable generated",
		zap.String("id", timetable.Id),
		zap.Int("entries", len(entries)),
		zap.Int("conflicts", len(conflicts)),
		zap.Int("unscheduled", len(unscheduled)),
		zap.Int("score", timetable.Score),
		zap.Duration("elapsed", elapsed),
	)
	return timetable, nil
}

// Searches slots (outermost), faculty and rooms (innermost) for the first candidate without conflicts. Conflicts
// of every rejected candidate are returned as well, whether or not a placement is found
func (timetabler *greedyTimetabler) place(
	subject Subject,
	batch StudentBatch,
	timeSlots []TimeSlot,
	faculty []Faculty,
	rooms []Room,
	placed []TimetableEntry,
) (TimetableEntry, []Conflict, bool) {
	observed := make([]Conflict, 0)
	candidateId := fmt.Sprintf("entry-%v", timetabler.newId())

	for _, timeSlot := range timeSlots {
		for _, member := range faculty {
			for _, room := range rooms {
				candidate := TimetableEntry{
					Id:       candidateId,
					Subject:  subject,
					Faculty:  member,
					Room:     room,
					Batch:    batch,
					TimeSlot: timeSlot,
				}
				conflicts := timetabler.checker.Check(candidate, placed)
				if len(conflicts) == 0 {
					return candidate, observed, true
				}
				observed = append(observed, conflicts...)
			}
		}
	}
	return TimetableEntry{}, observed, false
}

func (timetabler *greedyTimetabler) Verify(timetable GeneratedTimetable, modelInput ModelInput) bool {
	return verify(timetable, modelInput)
}
