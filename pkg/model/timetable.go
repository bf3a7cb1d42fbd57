package model

import "time"

type TimeSlot struct {
	Day       string `json:"day"`
	Period    int    `json:"period"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// slotKey identifies a cell of the weekly grid
type slotKey struct {
	day    string
	period int
}

func (timeSlot TimeSlot) key() slotKey {
	return slotKey{day: timeSlot.Day, period: timeSlot.Period}
}

// SameSlot checks whether both time slots occupy the same (day, period) cell
func (timeSlot TimeSlot) SameSlot(other TimeSlot) bool {
	return timeSlot.key() == other.key()
}

// TimetableEntry is one placed session. Entries are created by a Timetabler only
type TimetableEntry struct {
	Id       string       `json:"id"`
	Subject  Subject      `json:"subject"`
	Faculty  Faculty      `json:"faculty"`
	Room     Room         `json:"room"`
	Batch    StudentBatch `json:"batch"`
	TimeSlot TimeSlot     `json:"timeSlot"`
}

type ConflictType string

const (
	FacultyClash        ConflictType = "Faculty Clash"
	RoomClash           ConflictType = "Room Clash"
	BatchClash          ConflictType = "Batch Clash"
	ConstraintViolation ConflictType = "Constraint Violation"
)

type Severity string

const (
	High   Severity = "High"
	Medium Severity = "Medium"
	Low    Severity = "Low"
)

type Conflict struct {
	Id              string       `json:"id"`
	Type            ConflictType `json:"type"`
	Description     string       `json:"description"`
	Severity        Severity     `json:"severity"`
	AffectedEntries []string     `json:"affectedEntries"`
	Suggestions     []string     `json:"suggestions"`
}

type UnscheduledReason string

const (
	UnknownSubject     UnscheduledReason = "unknown subject"
	NoEligibleFaculty  UnscheduledReason = "no eligible faculty"
	NoRoom             UnscheduledReason = "no room available"
	NoFittingRoom      UnscheduledReason = "no room fits the batch"
	NoTimeSlot         UnscheduledReason = "empty time grid"
	NoConflictFreeSlot UnscheduledReason = "no conflict-free slot"
)

// UnscheduledSession records a session the engine could not place. Session is 1-based; it is 0 when the
// whole subject was skipped
type UnscheduledSession struct {
	BatchId   string            `json:"batchId"`
	SubjectId string            `json:"subjectId"`
	Session   int               `json:"session"`
	Reason    UnscheduledReason `json:"reason"`
}

type TimetableStatus string

const (
	Draft       TimetableStatus = "Draft"
	UnderReview TimetableStatus = "Under Review"
	Approved    TimetableStatus = "Approved"
	Published   TimetableStatus = "Published"
)

type GeneratedTimetable struct {
	Id          string               `json:"id"`
	Name        string               `json:"name"`
	Entries     []TimetableEntry     `json:"entries"`
	Conflicts   []Conflict           `json:"conflicts"`
	Unscheduled []UnscheduledSession `json:"unscheduled"`
	Score       int                  `json:"score"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Status      TimetableStatus      `json:"status"`
}
