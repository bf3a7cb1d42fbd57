package model

// PriorityWeights express the relative importance of each optimization objective. Every weight lies in [0, 1]
type PriorityWeights struct {
	FacultyLoad     float64 `json:"facultyLoad" mapstructure:"facultyLoad" validate:"gte=0,lte=1"`
	RoomUtilization float64 `json:"roomUtilization" mapstructure:"roomUtilization" validate:"gte=0,lte=1"`
	StudentSchedule float64 `json:"studentSchedule" mapstructure:"studentSchedule" validate:"gte=0,lte=1"`
	Constraints     float64 `json:"constraints" mapstructure:"constraints" validate:"gte=0,lte=1"`
}

// OptimizationSettings configure a scheduling run. The greedy timetabler validates them but does not consult
// them: they describe the budget and objectives of a search-based timetabler
type OptimizationSettings struct {
	MaxIterations   int             `json:"maxIterations" mapstructure:"maxIterations" validate:"gte=0"`
	TimeLimit       int             `json:"timeLimit" mapstructure:"timeLimit" validate:"gte=0"` // Seconds
	PriorityWeights PriorityWeights `json:"priorityWeights" mapstructure:"priorityWeights"`
}

func DefaultOptimizationSettings() OptimizationSettings {
	return OptimizationSettings{
		MaxIterations: 1000,
		TimeLimit:     30,
		PriorityWeights: PriorityWeights{
			FacultyLoad:     0.3,
			RoomUtilization: 0.2,
			StudentSchedule: 0.3,
			Constraints:     0.2,
		},
	}
}

func (settings OptimizationSettings) Validate() error {
	return validate.Struct(settings)
}

type HardConstraint struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

type SoftConstraint struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"` // 1-10
	Enabled     bool   `json:"enabled"`
}

// DefaultHardConstraints lists the rules an institution sees when it first configures the engine.
// Only the clash and capacity rules are enforced, whatever their Enabled flag says
func DefaultHardConstraints() []HardConstraint {
	return []HardConstraint{
		{
			Id:          "no-faculty-clash",
			Name:        "No Faculty Double Booking",
			Description: "Faculty cannot be assigned to multiple classes at the same time",
			Enabled:     true,
		},
		{
			Id:          "no-room-clash",
			Name:        "No Room Double Booking",
			Description: "Room cannot be assigned to multiple classes at the same time",
			Enabled:     true,
		},
		{
			Id:          "no-batch-clash",
			Name:        "No Batch Double Booking",
			Description: "Student batch cannot have multiple classes at the same time",
			Enabled:     true,
		},
		{
			Id:          "room-capacity",
			Name:        "Room Capacity Check",
			Description: "Room capacity must be sufficient for batch size",
			Enabled:     true,
		},
		{
			Id:          "faculty-availability",
			Name:        "Faculty Availability",
			Description: "Faculty must be available during assigned slots",
			Enabled:     true,
		},
	}
}

// DefaultSoftConstraints lists the weighted preferences of a fresh configuration. No timetabler consults them yet
func DefaultSoftConstraints() []SoftConstraint {
	return []SoftConstraint{
		{
			Id:          "even-distribution",
			Name:        "Even Distribution",
			Description: "Classes should be evenly distributed across the week",
			Weight:      8,
			Enabled:     true,
		},
		{
			Id:          "minimize-gaps",
			Name:        "Minimize Gaps",
			Description: "Minimize idle time for faculty and students",
			Weight:      7,
			Enabled:     true,
		},
		{
			Id:          "lab-morning-preference",
			Name:        "Lab Morning Preference",
			Description: "Schedule labs and practicals in morning slots when possible",
			Weight:      6,
			Enabled:     true,
		},
		{
			Id:          "faculty-load-balance",
			Name:        "Faculty Load Balance",
			Description: "Balance teaching loads fairly across faculty members",
			Weight:      7,
			Enabled:     true,
		},
		{
			Id:          "avoid-last-period",
			Name:        "Avoid Last Period",
			Description: "Minimize classes scheduled in the last period of the day",
			Weight:      5,
			Enabled:     true,
		},
	}
}
