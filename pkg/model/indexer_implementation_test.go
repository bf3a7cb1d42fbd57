package model

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func TestIndexAndAttributesDeterministic(t *testing.T) {
	// Arrange
	scenarios := [][]int{
		{1, 1},
		{5, 6},
		{6, 8},
		{7, 12},
	}

	for _, scenario := range scenarios {
		Days, Periods := scenario[0], scenario[1]
		timeSlots := GenerateTimeSlots(testInstitution(weekdays[:Days], Periods))

		// Act
		indexer := newSlotIndexer(timeSlots)

		// Assert
		assert.Equal(t, Days*Periods, indexer.Len())
		for index := range indexer.Len() {
			timeSlot := indexer.Attributes(index)
			actual, ok := indexer.Index(timeSlot.Day, timeSlot.Period)
			assert.True(t, ok)
			assert.Equal(t, index, actual)
		}
	}
}

func TestIndexAndAttributesNonDeterministic(t *testing.T) {
	for range 10 {
		// Arrange
		Days := rand.Intn(len(weekdays)) + 1
		Periods := rand.Intn(12) + 1
		timeSlots := GenerateTimeSlots(testInstitution(weekdays[:Days], Periods))

		// Act
		indexer := newSlotIndexer(timeSlots)

		// Assert
		indices := lo.Map(timeSlots, func(timeSlot TimeSlot, _ int) int {
			index, _ := indexer.Index(timeSlot.Day, timeSlot.Period)
			return index
		})
		assert.Equal(t, lo.Range(Days*Periods), indices)
	}
}

func TestIndexOutsideGrid(t *testing.T) {
	indexer := newSlotIndexer(GenerateTimeSlots(testInstitution([]string{"Monday"}, 4)))

	_, ok := indexer.Index("Sunday", 1)
	assert.False(t, ok)
	_, ok = indexer.Index("Monday", 5)
	assert.False(t, ok)
}

func TestIndexRepeatedDay(t *testing.T) {
	indexer := newSlotIndexer(GenerateTimeSlots(testInstitution([]string{"Monday", "Monday"}, 2)))

	index, ok := indexer.Index("Monday", 2)
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, 4, indexer.Len())
}
