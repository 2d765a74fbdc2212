package schedule

import (
	"math/rand"

	"smarttable/internal/catalog"
)

type backtrackingSolver struct {
	rng    *rand.Rand
	budget int
}

func newBacktrackingSolver(rng *rand.Rand) *backtrackingSolver {
	return &backtrackingSolver{
		rng:    rng,
		budget: DefaultBudget,
	}
}

// session is one required meeting of a course for a group; a (course, group)
// pair occupies SessionsPerWeek consecutive entries of the session list.
type session struct {
	course catalog.Course
	group  catalog.Group
	index  int
}

type outcome int

const (
	placed outcome = iota
	exhausted
	budgetOut
)

// solverRun carries the mutable state of one Solve call. A fresh run is built
// per call, so solver values share nothing across runs but their rand source.
type solverRun struct {
	tracker   Tracker
	orderer   Orderer
	evaluator Evaluator

	sessions []session
	solution Solution

	trials int
	budget int
	failed *session
}

func (solver *backtrackingSolver) Solve(cat catalog.Catalog) Result {
	run := &solverRun{
		tracker:   NewTracker(),
		orderer:   NewOrderer(cat, solver.rng),
		evaluator: NewEvaluator(),
		sessions:  solver.sessions(cat),
		solution:  make(Solution, 0),
		budget:    solver.budget,
	}

	switch run.search(0) {
	case placed:
		return Result{Kind: Scheduled, Solution: run.solution}
	case budgetOut:
		return Result{Kind: BudgetExhausted}
	}

	return Result{
		Kind:          Infeasible,
		FailedCourse:  run.failed.course.Code,
		FailedGroup:   run.failed.group.Name,
		FailedSession: run.failed.index,
	}
}

// sessions expands the catalog into the ordered list of sessions to place.
// Courses and groups are shuffled once per run; the iteration order decides
// which pairs are attempted first and therefore shapes the arrangement, never
// its validity.
func (solver *backtrackingSolver) sessions(cat catalog.Catalog) []session {
	courses := make([]catalog.Course, len(cat.Courses))
	copy(courses, cat.Courses)
	solver.rng.Shuffle(len(courses), func(i, j int) {
		courses[i], courses[j] = courses[j], courses[i]
	})

	groups := make([]catalog.Group, len(cat.Groups))
	copy(groups, cat.Groups)
	solver.rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})

	sessions := make([]session, 0)
	for _, course := range courses {
		for _, group := range groups {
			for index := 0; index < course.SessionsPerWeek; index++ {
				sessions = append(sessions, session{course: course, group: group, index: index})
			}
		}
	}

	return sessions
}

// search places sessions[depth:] by depth-first backtracking: the first
// candidate triple the evaluator accepts is committed and the remainder of
// the list is attempted; when that fails, the commitment is undone and the
// next candidate is tried. Exhausting every candidate of the first session
// that cannot be placed makes the whole run infeasible.
func (run *solverRun) search(depth int) outcome {
	if depth == len(run.sessions) {
		return placed
	}

	current := run.sessions[depth]
	preferredId, _ := run.tracker.PreferredTeacher(current.course.Code)

	for _, teacher := range run.orderer.Teachers(preferredId) {
		for _, room := range run.orderer.Rooms(current.course) {
			for _, slot := range run.orderer.TimeSlots() {
				if run.trials++; run.trials > run.budget {
					return budgetOut
				}

				if run.evaluator.Check(current.course, teacher, room, slot, current.group, run.tracker) != None {
					continue
				}

				assignment := newAssignment(current.course, teacher, room, slot, current.group)
				commit := run.tracker.Commit(assignment, teacher.Id, room.Id, current.group.Id)
				run.solution = append(run.solution, assignment)

				switch run.search(depth + 1) {
				case placed:
					return placed
				case budgetOut:
					return budgetOut
				}

				run.tracker.Uncommit(commit)
				run.solution = run.solution[:len(run.solution)-1]
			}
		}
	}

	if run.failed == nil {
		run.failed = &current
	}
	return exhausted
}
