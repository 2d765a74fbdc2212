package schedule

import (
	"github.com/samber/lo"

	"smarttable/internal/catalog"
)

func (solver *backtrackingSolver) Verify(solution Solution, cat catalog.Catalog) bool {
	return verify(solution, cat)
}

type occupancyKey struct {
	name   string
	day    string
	period int
}

func verify(solution Solution, cat catalog.Catalog) bool {
	teacherBusy := make(map[occupancyKey]bool)
	roomBusy := make(map[occupancyKey]bool)
	groupBusy := make(map[occupancyKey]bool)
	sessions := make(map[[2]string]int)

	for _, assignment := range solution {
		teacherKey := occupancyKey{assignment.TeacherName, assignment.Day, assignment.Period}
		roomKey := occupancyKey{assignment.RoomNumber, assignment.Day, assignment.Period}
		groupKey := occupancyKey{assignment.GroupName, assignment.Day, assignment.Period}

		// Check that:
		// - Teacher is not already giving a session in the period and day
		// - Room is not already occupied in the period and day
		// - Group is not already attending a session in the period and day
		// - Room type matches the course type
		if teacherBusy[teacherKey] ||
			roomBusy[roomKey] ||
			groupBusy[groupKey] ||
			assignment.CourseType != assignment.RoomType {
			return false
		}

		teacherBusy[teacherKey] = true
		roomBusy[roomKey] = true
		groupBusy[groupKey] = true
		sessions[[2]string{assignment.CourseCode, assignment.GroupName}]++
	}

	// Check that every (course, group) pair received exactly its required
	// number of sessions and that no assignment fell outside the catalog.
	expected := 0
	for _, course := range cat.Courses {
		for _, group := range cat.Groups {
			if sessions[[2]string{course.Code, group.Name}] != course.SessionsPerWeek {
				return false
			}
			expected += course.SessionsPerWeek
		}
	}

	return expected == len(solution) && !lo.SomeBy(solution, func(assignment Assignment) bool {
		return !lo.ContainsBy(cat.TimeSlots, func(slot catalog.TimeSlot) bool {
			return slot.Day == assignment.Day && slot.Period == assignment.Period
		})
	})
}
