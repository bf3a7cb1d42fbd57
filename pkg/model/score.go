package model

import (
	"math"

	"github.com/samber/lo"
)

// Score measures coverage: the percentage of owed subjects (mandatory subjects of each batch, or the whole
// catalog when a batch declares none) matched by placed entries, rounded and capped at 100. Soft constraints,
// preferences and load balance play no part in it
func Score(entries []TimetableEntry, batches []StudentBatch, subjects []Subject) int {
	totalRequired := lo.SumBy(batches, func(batch StudentBatch) int {
		if len(batch.MandatorySubjects) > 0 {
			return len(batch.MandatorySubjects)
		}
		return len(subjects)
	})
	if totalRequired == 0 {
		return 0
	}

	score := int(math.Round(100 * float64(len(entries)) / float64(totalRequired)))
	return min(score, 100)
}
