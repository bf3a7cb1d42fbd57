package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type SubjectType string

const (
	Theory   SubjectType = "Theory"
	Lab      SubjectType = "Lab"
	Tutorial SubjectType = "Tutorial"
	Seminar  SubjectType = "Seminar"
)

type RoomType string

const (
	Classroom   RoomType = "Classroom"
	LabRoom     RoomType = "Lab"
	SeminarHall RoomType = "Seminar Hall"
	Auditorium  RoomType = "Auditorium"
)

// Subject is an academic course unit. SessionsPerWeek is derived from Credits whenever a timetable is built,
// and SessionDuration is expressed in minutes
type Subject struct {
	Id                 string      `json:"id" validate:"required"`
	Code               string      `json:"code"`
	Name               string      `json:"name"`
	Type               SubjectType `json:"type"`
	Credits            int         `json:"credits" validate:"gte=0"`
	WeeklyHours        int         `json:"weeklyHours" validate:"gte=0"`
	SessionsPerWeek    int         `json:"sessionsPerWeek"`
	SessionDuration    int         `json:"sessionDuration" validate:"gte=0"`
	PreferredTimeSlots []string    `json:"preferredTimeSlots"`
	ContinuousHours    int         `json:"continuousHours" validate:"gte=0"`
	EquipmentRequired  []string    `json:"equipmentRequired"`
}

type FacultyPreferences struct {
	PreferredDays      []string `json:"preferredDays"`
	PreferredTimeSlots []string `json:"preferredTimeSlots"`
	NoBackToBack       bool     `json:"noBackToBack"`
	MaxDailyHours      int      `json:"maxDailyHours" validate:"gte=0"`
}

type Faculty struct {
	Id               string             `json:"id" validate:"required"`
	Name             string             `json:"name"`
	EligibleSubjects []string           `json:"eligibleSubjects"` // Subject ids
	MaxWeeklyLoad    int                `json:"maxWeeklyLoad" validate:"gte=0"`
	Availability     []TimeSlot         `json:"availability"`
	UnavailableSlots []TimeSlot         `json:"unavailableSlots"`
	Preferences      FacultyPreferences `json:"preferences"`
	LeaveFrequency   float64            `json:"leaveFrequency" validate:"gte=0,lte=1"`
	PreferredRooms   []string           `json:"preferredRooms,omitempty"`
}

type Room struct {
	Id           string     `json:"id" validate:"required"`
	Name         string     `json:"name"`
	Type         RoomType   `json:"type"`
	Capacity     int        `json:"capacity" validate:"gte=0"`
	Equipment    []string   `json:"equipment"`
	Availability []TimeSlot `json:"availability"`
	Location     string     `json:"location"`
}

type ElectiveGroup struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Subjects      []string `json:"subjects"`
	MaxSelections int      `json:"maxSelections"`
}

type StudentBatch struct {
	Id                  string          `json:"id" validate:"required"`
	Name                string          `json:"name"`
	Department          string          `json:"department"`
	Year                int             `json:"year"`
	Section             string          `json:"section"`
	Size                int             `json:"size" validate:"gte=0"`
	MandatorySubjects   []string        `json:"mandatorySubjects"` // Subject ids; empty means every subject of the catalog
	AssignedRoomId      string          `json:"assignedRoomId,omitempty"`
	ElectiveGroups      []ElectiveGroup `json:"electiveGroups"`
	MaxDailyClasses     int             `json:"maxDailyClasses" validate:"gte=0"`
	SpecialRequirements []string        `json:"specialRequirements"`
}

type PeriodTiming struct {
	Period    int    `json:"period"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Break struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Institution struct {
	Id            string         `json:"id"`
	Name          string         `json:"name"`
	WorkingDays   []string       `json:"workingDays"`
	PeriodsPerDay int            `json:"periodsPerDay"`
	PeriodTimings []PeriodTiming `json:"periodTimings"`
	Breaks        []Break        `json:"breaks"` // Accepted but not consumed by the engine
	SemesterStart string         `json:"semesterStart"`
	SemesterEnd   string         `json:"semesterEnd"`
	Holidays      []string       `json:"holidays"`
}

// ModelInput is the catalog handed to a Timetabler. The engine treats every field as read-only
type ModelInput struct {
	Institution     Institution      `json:"institution"`
	Subjects        []Subject        `json:"subjects" validate:"dive"`
	Faculty         []Faculty        `json:"faculty" validate:"dive"`
	Rooms           []Room           `json:"rooms" validate:"dive"`
	Batches         []StudentBatch   `json:"batches" validate:"dive"`
	HardConstraints []HardConstraint `json:"hardConstraints"`
	SoftConstraints []SoftConstraint `json:"softConstraints"`
}

// WithBatches returns a copy of the input restricted to the given batches, keeping catalog order
func (modelInput ModelInput) WithBatches(ids ...string) (ModelInput, error) {
	for _, id := range ids {
		if !lo.ContainsBy(modelInput.Batches, func(batch StudentBatch) bool { return batch.Id == id }) {
			return ModelInput{}, fmt.Errorf("batch \"%v\" not found", id)
		}
	}

	restricted := modelInput
	restricted.Batches = lo.Filter(modelInput.Batches, func(batch StudentBatch, _ int) bool {
		return lo.Contains(ids, batch.Id)
	})
	return restricted, nil
}

// InputFromFile decodes a catalog from a JSON or YAML file according to its extension
func InputFromFile(file string) (ModelInput, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return InputFromJson(file)
	case ".yaml", ".yml":
		return InputFromYaml(file)
	default:
		return ModelInput{}, fmt.Errorf("unsupported input format: %v", file)
	}
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, fmt.Errorf("cannot parse input file: %w", err)
	}
	return decodeInput(inputJson)
}

func InputFromYaml(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return ModelInput{}, fmt.Errorf("cannot parse input file: %w", err)
	}
	return decodeInput(inputYaml)
}

func decodeInput(raw map[string]any) (ModelInput, error) {
	var input ModelInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &input,
	})
	if err != nil {
		return ModelInput{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessInput(input)
}

// ProcessInput validates a decoded catalog and fills the default constraint sets when absent
func ProcessInput(input ModelInput) (ModelInput, error) {
	if err := validate.Struct(input); err != nil {
		return ModelInput{}, fmt.Errorf("invalid input: %w", err)
	}

	// Make sure that entity ids are unique within each catalog
	duplicates := map[string][]string{
		"subject": lo.FindDuplicates(lo.Map(input.Subjects, func(subject Subject, _ int) string { return subject.Id })),
		"faculty": lo.FindDuplicates(lo.Map(input.Faculty, func(member Faculty, _ int) string { return member.Id })),
		"room":    lo.FindDuplicates(lo.Map(input.Rooms, func(room Room, _ int) string { return room.Id })),
		"batch":   lo.FindDuplicates(lo.Map(input.Batches, func(batch StudentBatch, _ int) string { return batch.Id })),
	}
	for _, kind := range []string{"subject", "faculty", "room", "batch"} {
		if len(duplicates[kind]) > 0 {
			return ModelInput{}, fmt.Errorf("duplicate %v ids: %v", kind, duplicates[kind])
		}
	}

	if len(input.HardConstraints) == 0 {
		input.HardConstraints = DefaultHardConstraints()
	}
	if len(input.SoftConstraints) == 0 {
		input.SoftConstraints = DefaultSoftConstraints()
	}
	return input, nil
}
