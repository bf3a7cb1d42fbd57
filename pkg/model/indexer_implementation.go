package model

type slotIndexerImplementation struct {
	timeSlots []TimeSlot
	indices   map[slotKey]int
}

func (indexer *slotIndexerImplementation) Index(day string, period int) (int, bool) {
	index, ok := indexer.indices[slotKey{day: day, period: period}]
	return index, ok
}

func (indexer *slotIndexerImplementation) Attributes(index int) TimeSlot {
	return indexer.timeSlots[index]
}

func (indexer *slotIndexerImplementation) Len() int {
	return len(indexer.timeSlots)
}
