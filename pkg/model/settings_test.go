package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizationSettingsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptimizationSettings().Validate())
	assert.NoError(t, OptimizationSettings{}.Validate())

	invalid := []OptimizationSettings{
		{MaxIterations: -1},
		{TimeLimit: -1},
		{PriorityWeights: PriorityWeights{FacultyLoad: -0.1}},
		{PriorityWeights: PriorityWeights{RoomUtilization: 1.01}},
	}
	for _, settings := range invalid {
		assert.Error(t, settings.Validate(), "%+v", settings)
	}
}

func TestDefaultConstraints(t *testing.T) {
	hard := DefaultHardConstraints()
	soft := DefaultSoftConstraints()

	assert.Len(t, hard, 5)
	assert.Len(t, soft, 5)
	for _, constraint := range hard {
		assert.True(t, constraint.Enabled, constraint.Id)
	}
	for _, constraint := range soft {
		assert.True(t, constraint.Enabled, constraint.Id)
		assert.GreaterOrEqual(t, constraint.Weight, 1, constraint.Id)
		assert.LessOrEqual(t, constraint.Weight, 10, constraint.Id)
	}
}
