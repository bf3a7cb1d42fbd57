package model

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestGenerateTimeSlots(t *testing.T) {
	g := NewWithT(t)

	institution := Institution{
		WorkingDays: []string{"Tuesday", "Monday"},
		PeriodTimings: []PeriodTiming{
			{Period: 2, StartTime: "10:00", EndTime: "11:00"},
			{Period: 1, StartTime: "09:00", EndTime: "10:00"},
		},
	}

	timeSlots := GenerateTimeSlots(institution)

	g.Expect(timeSlots).To(HaveExactElements(
		TimeSlot{Day: "Tuesday", Period: 1, StartTime: "09:00", EndTime: "10:00"},
		TimeSlot{Day: "Tuesday", Period: 2, StartTime: "10:00", EndTime: "11:00"},
		TimeSlot{Day: "Monday", Period: 1, StartTime: "09:00", EndTime: "10:00"},
		TimeSlot{Day: "Monday", Period: 2, StartTime: "10:00", EndTime: "11:00"},
	))
	// The configured timings are left untouched
	g.Expect(institution.PeriodTimings[0].Period).To(Equal(2))
}

func TestGenerateTimeSlotsCartesianSize(t *testing.T) {
	g := NewWithT(t)

	for days := range 7 {
		for periods := range 9 {
			institution := testInstitution(make([]string, days), periods)
			g.Expect(GenerateTimeSlots(institution)).To(HaveLen(days * periods))
		}
	}
}

func TestGenerateTimeSlotsEmpty(t *testing.T) {
	g := NewWithT(t)

	g.Expect(GenerateTimeSlots(Institution{})).To(BeEmpty())
	g.Expect(GenerateTimeSlots(testInstitution(nil, 6))).To(BeEmpty())
	g.Expect(GenerateTimeSlots(testInstitution([]string{"Monday"}, 0))).To(BeEmpty())
}
