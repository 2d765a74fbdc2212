package schedule

import "smarttable/internal/catalog"

const (
	// No two sessions of one course for one group may sit this close on the
	// same day.
	adjacencyDistance = 1
	// A group takes at most this many sessions of one course per day.
	maxDailyCourseSessions = 2
	// A teacher gives at most this many sessions per day.
	maxDailyTeacherSessions = 6
)

type standardEvaluator struct{}

func (evaluator *standardEvaluator) Check(
	course catalog.Course,
	teacher catalog.Teacher,
	room catalog.Room,
	slot catalog.TimeSlot,
	group catalog.Group,
	tracker Tracker,
) Violation {
	switch {
	case !tracker.TeacherFree(teacher.Id, slot.Day, slot.Period):
		return TeacherConflict
	case !tracker.RoomFree(room.Id, slot.Day, slot.Period):
		return RoomConflict
	case !tracker.GroupFree(group.Id, slot.Day, slot.Period):
		return GroupConflict
	case course.CourseType != room.RoomType:
		return TypeMismatch
	case tracker.CourseSessionAt(course.Code, group.Id, slot.Day, slot.Period-adjacencyDistance) ||
		tracker.CourseSessionAt(course.Code, group.Id, slot.Day, slot.Period+adjacencyDistance):
		return AdjacencyViolation
	case tracker.SessionCount(course.Code, group.Id, slot.Day) >= maxDailyCourseSessions:
		return DailyCourseCap
	case tracker.TeacherLoad(teacher.Id, slot.Day) >= maxDailyTeacherSessions:
		return DailyTeacherCap
	}
	return None
}
