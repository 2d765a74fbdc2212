package schedule

// Tracker records the resource usage committed so far during one solver run:
// which (day, period) slots each teacher, room and group already occupies,
// how many sessions of a course a group has on each day, and which teacher a
// course is stuck to. All lookups are hash-keyed; an absent key simply means
// "not yet busy".
type Tracker interface {
	TeacherFree(teacherId, day string, period int) bool
	RoomFree(roomId, day string, period int) bool
	GroupFree(groupId, day string, period int) bool

	// CourseSessionAt reports whether the group already has a session of the
	// course committed at the given day and period.
	CourseSessionAt(courseCode, groupId, day string, period int) bool
	// SessionCount returns the number of sessions of the course committed
	// for the group on the given day.
	SessionCount(courseCode, groupId, day string) int
	// TeacherLoad returns the number of assignments, across all courses and
	// groups, committed for the teacher on the given day.
	TeacherLoad(teacherId, day string) int

	// PreferredTeacher returns the teacher recorded for the course by the
	// first committed session, if any. The entry is set exactly once and
	// survives until the commit that set it is undone.
	PreferredTeacher(courseCode string) (string, bool)

	Commit(assignment Assignment, teacherId, roomId, groupId string) Commit
	Uncommit(commit Commit)
}

// Commit is the receipt returned by Tracker.Commit; handing it back to
// Uncommit restores the tracker to its prior state.
type Commit struct {
	assignment   Assignment
	teacherId    string
	roomId       string
	groupId      string
	setPreferred bool
}

func (commit Commit) Assignment() Assignment {
	return commit.assignment
}

func NewTracker() Tracker {
	return newBusyTracker()
}
