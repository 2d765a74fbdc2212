package schedule

type slotKey struct {
	day    string
	period int
}

type courseDayKey struct {
	courseCode string
	groupId    string
	day        string
}

type teacherDayKey struct {
	teacherId string
	day       string
}

type busyTracker struct {
	teacherBusy   map[string]map[slotKey]bool
	roomBusy      map[string]map[slotKey]bool
	groupBusy     map[string]map[slotKey]bool
	coursePeriods map[courseDayKey]map[int]bool
	teacherLoad   map[teacherDayKey]int
	preferred     map[string]string
}

func newBusyTracker() *busyTracker {
	return &busyTracker{
		teacherBusy:   make(map[string]map[slotKey]bool),
		roomBusy:      make(map[string]map[slotKey]bool),
		groupBusy:     make(map[string]map[slotKey]bool),
		coursePeriods: make(map[courseDayKey]map[int]bool),
		teacherLoad:   make(map[teacherDayKey]int),
		preferred:     make(map[string]string),
	}
}

func (tracker *busyTracker) TeacherFree(teacherId, day string, period int) bool {
	return !tracker.teacherBusy[teacherId][slotKey{day, period}]
}

func (tracker *busyTracker) RoomFree(roomId, day string, period int) bool {
	return !tracker.roomBusy[roomId][slotKey{day, period}]
}

func (tracker *busyTracker) GroupFree(groupId, day string, period int) bool {
	return !tracker.groupBusy[groupId][slotKey{day, period}]
}

func (tracker *busyTracker) CourseSessionAt(courseCode, groupId, day string, period int) bool {
	return tracker.coursePeriods[courseDayKey{courseCode, groupId, day}][period]
}

func (tracker *busyTracker) SessionCount(courseCode, groupId, day string) int {
	return len(tracker.coursePeriods[courseDayKey{courseCode, groupId, day}])
}

func (tracker *busyTracker) TeacherLoad(teacherId, day string) int {
	return tracker.teacherLoad[teacherDayKey{teacherId, day}]
}

func (tracker *busyTracker) PreferredTeacher(courseCode string) (string, bool) {
	teacherId, ok := tracker.preferred[courseCode]
	return teacherId, ok
}

func (tracker *busyTracker) Commit(assignment Assignment, teacherId, roomId, groupId string) Commit {
	slot := slotKey{assignment.Day, assignment.Period}

	occupy(tracker.teacherBusy, teacherId, slot)
	occupy(tracker.roomBusy, roomId, slot)
	occupy(tracker.groupBusy, groupId, slot)

	courseKey := courseDayKey{assignment.CourseCode, groupId, assignment.Day}
	if tracker.coursePeriods[courseKey] == nil {
		tracker.coursePeriods[courseKey] = make(map[int]bool)
	}
	tracker.coursePeriods[courseKey][assignment.Period] = true

	tracker.teacherLoad[teacherDayKey{teacherId, assignment.Day}]++

	commit := Commit{
		assignment: assignment,
		teacherId:  teacherId,
		roomId:     roomId,
		groupId:    groupId,
	}
	if _, ok := tracker.preferred[assignment.CourseCode]; !ok {
		tracker.preferred[assignment.CourseCode] = teacherId
		commit.setPreferred = true
	}

	return commit
}

func (tracker *busyTracker) Uncommit(commit Commit) {
	slot := slotKey{commit.assignment.Day, commit.assignment.Period}

	delete(tracker.teacherBusy[commit.teacherId], slot)
	delete(tracker.roomBusy[commit.roomId], slot)
	delete(tracker.groupBusy[commit.groupId], slot)

	courseKey := courseDayKey{commit.assignment.CourseCode, commit.groupId, commit.assignment.Day}
	delete(tracker.coursePeriods[courseKey], commit.assignment.Period)

	tracker.teacherLoad[teacherDayKey{commit.teacherId, commit.assignment.Day}]--

	// Stickiness is owned by the commit that set it: only that commit's undo
	// releases the course for a different teacher.
	if commit.setPreferred {
		delete(tracker.preferred, commit.assignment.CourseCode)
	}
}

func occupy(busy map[string]map[slotKey]bool, id string, slot slotKey) {
	if busy[id] == nil {
		busy[id] = make(map[slotKey]bool)
	}
	busy[id][slot] = true
}
