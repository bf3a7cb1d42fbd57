package model

import (
	"cmp"
	"slices"
)

// GenerateTimeSlots expands the institution's calendar into every schedulable slot, ordered by working day
// (in configured order) and then by period number. No working days or no period timings yield no slots
func GenerateTimeSlots(institution Institution) []TimeSlot {
	timings := slices.Clone(institution.PeriodTimings)
	slices.SortStableFunc(timings, func(a, b PeriodTiming) int {
		return cmp.Compare(a.Period, b.Period)
	})

	timeSlots := make([]TimeSlot, 0, len(institution.WorkingDays)*len(timings))
	for _, day := range institution.WorkingDays {
		for _, timing := range timings {
			timeSlots = append(timeSlots, TimeSlot{
				Day:       day,
				Period:    timing.Period,
				StartTime: timing.StartTime,
				EndTime:   timing.EndTime,
			})
		}
	}
	return timeSlots
}
