package schedule

import "smarttable/internal/catalog"

// Assignment is one scheduled session. It is denormalized on purpose: every
// display field is copied in so downstream consumers need no further joins.
type Assignment struct {
	CourseCode  string `json:"course_code"`
	CourseName  string `json:"course_name"`
	TeacherName string `json:"teacher_name"`
	RoomNumber  string `json:"room_number"`
	Day         string `json:"day"`
	Period      int    `json:"period"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	GroupName   string `json:"group_name"`
	CourseType  string `json:"course_type"`
	RoomType    string `json:"room_type"`
}

// Solution is the sequence of assignments in the order the solver committed
// them, which is scheduling order rather than chronological order.
type Solution []Assignment

type ResultKind int

const (
	Scheduled ResultKind = iota
	Infeasible
	BudgetExhausted
)

func (kind ResultKind) String() string {
	switch kind {
	case Scheduled:
		return "Scheduled"
	case Infeasible:
		return "Infeasible"
	case BudgetExhausted:
		return "BudgetExhausted"
	}
	return "Unknown"
}

// Result is the outcome of one solver run. Solution is populated only when
// Kind is Scheduled; FailedCourse, FailedGroup and FailedSession identify the
// first session that exhausted its candidates when Kind is Infeasible.
type Result struct {
	Kind          ResultKind
	Solution      Solution
	FailedCourse  string
	FailedGroup   string
	FailedSession int
}

func newAssignment(
	course catalog.Course,
	teacher catalog.Teacher,
	room catalog.Room,
	slot catalog.TimeSlot,
	group catalog.Group,
) Assignment {
	return Assignment{
		CourseCode:  course.Code,
		CourseName:  course.Name,
		TeacherName: teacher.Name,
		RoomNumber:  room.RoomNumber,
		Day:         slot.Day,
		Period:      slot.Period,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		GroupName:   group.Name,
		CourseType:  course.CourseType,
		RoomType:    room.RoomType,
	}
}
