package schedule

import "smarttable/internal/catalog"

// Violation identifies the first constraint a candidate assignment breaks,
// or None when the candidate is acceptable.
type Violation int

const (
	None Violation = iota
	TeacherConflict
	RoomConflict
	GroupConflict
	TypeMismatch
	AdjacencyViolation
	DailyCourseCap
	DailyTeacherCap
)

func (violation Violation) String() string {
	switch violation {
	case None:
		return "None"
	case TeacherConflict:
		return "TeacherConflict"
	case RoomConflict:
		return "RoomConflict"
	case GroupConflict:
		return "GroupConflict"
	case TypeMismatch:
		return "TypeMismatch"
	case AdjacencyViolation:
		return "AdjacencyViolation"
	case DailyCourseCap:
		return "DailyCourseCap"
	case DailyTeacherCap:
		return "DailyTeacherCap"
	}
	return "Unknown"
}

// Evaluator decides whether a candidate (course, teacher, room, timeslot,
// group) tuple may be committed given the tracker's current state. Checks run
// in a fixed order and stop at the first violation.
type Evaluator interface {
	Check(
		course catalog.Course,
		teacher catalog.Teacher,
		room catalog.Room,
		slot catalog.TimeSlot,
		group catalog.Group,
		tracker Tracker,
	) Violation
}

func NewEvaluator() Evaluator {
	return &standardEvaluator{}
}
