package model

// slotIndexer interface is design to give a unique index to every (day, period) cell of a time grid and vice versa
type slotIndexer interface {
	// Returns the index of the (day, period) cell, or false when the cell does not belong to the grid
	Index(day string, period int) (int, bool)
	// Returns the time slot stored at the given index
	Attributes(index int) TimeSlot
	// Returns the number of cells in the grid
	Len() int
}

func newSlotIndexer(timeSlots []TimeSlot) slotIndexer {
	indexer := &slotIndexerImplementation{
		timeSlots: timeSlots,
		indices:   make(map[slotKey]int, len(timeSlots)),
	}
	for index, timeSlot := range timeSlots {
		// Keep the first occurrence when a day is configured twice
		if _, ok := indexer.indices[timeSlot.key()]; !ok {
			indexer.indices[timeSlot.key()] = index
		}
	}
	return indexer
}
