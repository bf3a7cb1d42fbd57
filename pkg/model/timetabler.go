package model

// Timetabler builds a timetable for every batch of the input. Implementations are free to choose their search
// strategy, but Build must never return a timetable whose entries clash on faculty, room or batch
type Timetabler interface {
	Build(
		modelInput ModelInput,
		settings OptimizationSettings,
	) (timetable GeneratedTimetable, err error)

	Verify(
		timetable GeneratedTimetable,
		modelInput ModelInput,
	) bool
}
