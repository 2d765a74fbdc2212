package schedule

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttable/internal/catalog"
)

func slotsFor(day string, periods ...int) []catalog.TimeSlot {
	return lo.Map(periods, func(period int, _ int) catalog.TimeSlot {
		return slotAt(day, period)
	})
}

func dayPeriods(solution Solution) [][2]any {
	return lo.Map(solution, func(assignment Assignment, _ int) [2]any {
		return [2]any{assignment.Day, assignment.Period}
	})
}

func TestSolveEmptyCatalog(t *testing.T) {
	t.Run("no courses", func(t *testing.T) {
		// Arrange
		solver := NewSolver(rand.New(rand.NewSource(1)))

		// Act
		result := solver.Solve(catalog.Catalog{Groups: []catalog.Group{group1}})

		// Assert
		assert.Equal(t, Scheduled, result.Kind)
		assert.Empty(t, result.Solution)
	})

	t.Run("no groups", func(t *testing.T) {
		// Arrange
		solver := NewSolver(rand.New(rand.NewSource(1)))

		// Act
		result := solver.Solve(catalog.Catalog{Courses: []catalog.Course{theoryCourse}})

		// Assert
		assert.Equal(t, Scheduled, result.Kind)
		assert.Empty(t, result.Solution)
	})
}

func TestSolveSkipsAdjacentPeriods(t *testing.T) {
	// Arrange: one course needing two sessions, three slots on one day. The
	// adjacency rule forbids P1+P2 and P2+P3, so P1+P3 is the only pair.
	cat := catalog.Catalog{
		Courses:   []catalog.Course{{Id: "C1", Code: "CS101", Name: "Data Structures", SessionsPerWeek: 2, CourseType: catalog.Theory}},
		Teachers:  []catalog.Teacher{teacher1},
		Rooms:     []catalog.Room{theoryRoom},
		TimeSlots: slotsFor("Monday", 1, 2, 3),
		Groups:    []catalog.Group{group1},
	}
	solver := NewSolver(rand.New(rand.NewSource(1)))

	// Act
	result := solver.Solve(cat)

	// Assert
	require.Equal(t, Scheduled, result.Kind)
	assert.ElementsMatch(t, [][2]any{{"Monday", 1}, {"Monday", 3}}, dayPeriods(result.Solution))
	assert.True(t, solver.Verify(result.Solution, cat))
}

func TestSolveInfeasibleWithoutMatchingRoom(t *testing.T) {
	// Arrange: a lab course but only theory rooms
	cat := catalog.Catalog{
		Courses:   []catalog.Course{labCourse},
		Teachers:  []catalog.Teacher{teacher1},
		Rooms:     []catalog.Room{theoryRoom, theoryRoom2},
		TimeSlots: slotsFor("Monday", 1, 2, 3),
		Groups:    []catalog.Group{group1},
	}
	solver := NewSolver(rand.New(rand.NewSource(1)))

	// Act
	result := solver.Solve(cat)

	// Assert: the very first session exhausts its candidates
	assert.Equal(t, Infeasible, result.Kind)
	assert.Empty(t, result.Solution)
	assert.Equal(t, labCourse.Code, result.FailedCourse)
	assert.Equal(t, group1.Name, result.FailedGroup)
	assert.Equal(t, 0, result.FailedSession)
}

func TestSolveDailyCourseCap(t *testing.T) {
	course := catalog.Course{Id: "C1", Code: "CS101", Name: "Data Structures", SessionsPerWeek: 3, CourseType: catalog.Theory}

	t.Run("infeasible when only one day exists", func(t *testing.T) {
		// Arrange: three sessions cannot fit into one day under the cap of two
		cat := catalog.Catalog{
			Courses:   []catalog.Course{course},
			Teachers:  []catalog.Teacher{teacher1},
			Rooms:     []catalog.Room{theoryRoom},
			TimeSlots: slotsFor("Monday", 1, 2, 3, 4, 5),
			Groups:    []catalog.Group{group1},
		}
		solver := NewSolver(rand.New(rand.NewSource(1)))

		// Act
		result := solver.Solve(cat)

		// Assert
		assert.Equal(t, Infeasible, result.Kind)
		assert.Equal(t, course.Code, result.FailedCourse)
	})

	t.Run("third session spills onto another day", func(t *testing.T) {
		// Arrange
		cat := catalog.Catalog{
			Courses:   []catalog.Course{course},
			Teachers:  []catalog.Teacher{teacher1},
			Rooms:     []catalog.Room{theoryRoom},
			TimeSlots: append(slotsFor("Monday", 1, 2, 3, 4, 5), slotAt("Tuesday", 1)),
			Groups:    []catalog.Group{group1},
		}
		solver := NewSolver(rand.New(rand.NewSource(1)))

		// Act
		result := solver.Solve(cat)

		// Assert
		require.Equal(t, Scheduled, result.Kind)
		assert.ElementsMatch(t, [][2]any{{"Monday", 1}, {"Monday", 3}, {"Tuesday", 1}}, dayPeriods(result.Solution))
		assert.True(t, solver.Verify(result.Solution, cat))
	})
}

func TestSolveBacktracksOutOfDeadEnds(t *testing.T) {
	// Arrange: with slots Monday P1..P3, placing the single-session course at
	// P1 or P3 leaves no non-adjacent pair for the two-session course. Only
	// the arrangement {single at P2, double at P1 and P3} works, so the run
	// succeeds only by undoing a locally valid commitment.
	single := catalog.Course{Id: "C1", Code: "REC1", Name: "Recitation I", SessionsPerWeek: 1, CourseType: catalog.Theory}
	double := catalog.Course{Id: "C2", Code: "REC2", Name: "Recitation II", SessionsPerWeek: 2, CourseType: catalog.Theory}
	cat := catalog.Catalog{
		Courses:   []catalog.Course{single, double},
		Teachers:  []catalog.Teacher{teacher1},
		Rooms:     []catalog.Room{theoryRoom},
		TimeSlots: slotsFor("Monday", 1, 2, 3),
		Groups:    []catalog.Group{group1},
	}

	for seed := int64(1); seed <= 10; seed++ {
		// Act
		solver := NewSolver(rand.New(rand.NewSource(seed)))
		result := solver.Solve(cat)

		// Assert
		require.Equal(t, Scheduled, result.Kind)
		require.True(t, solver.Verify(result.Solution, cat))

		placements := lo.Map(result.Solution, func(assignment Assignment, _ int) [2]any {
			return [2]any{assignment.CourseCode, assignment.Period}
		})
		assert.ElementsMatch(t, [][2]any{{"REC1", 2}, {"REC2", 1}, {"REC2", 3}}, placements)
	}
}

func TestSolveSticksToOneTeacher(t *testing.T) {
	// Arrange: after the first session commits, the preferred teacher is
	// tried first for the second and a free slot exists for them.
	course := catalog.Course{Id: "C1", Code: "CS101", Name: "Data Structures", SessionsPerWeek: 2, CourseType: catalog.Theory}
	cat := catalog.Catalog{
		Courses:   []catalog.Course{course},
		Teachers:  []catalog.Teacher{teacher1, teacher2},
		Rooms:     []catalog.Room{theoryRoom},
		TimeSlots: slotsFor("Monday", 1, 2, 3, 4),
		Groups:    []catalog.Group{group1},
	}

	for seed := int64(1); seed <= 10; seed++ {
		// Act
		solver := NewSolver(rand.New(rand.NewSource(seed)))
		result := solver.Solve(cat)

		// Assert
		require.Equal(t, Scheduled, result.Kind)
		require.Len(t, result.Solution, 2)
		assert.Equal(t, result.Solution[0].TeacherName, result.Solution[1].TeacherName)
	}
}

func TestSolveSampleCatalog(t *testing.T) {
	// Arrange
	cat := catalog.Sample()
	solver := NewSolver(rand.New(rand.NewSource(1)))

	// Act
	result := solver.Solve(cat)

	// Assert
	require.Equal(t, Scheduled, result.Kind)
	assert.True(t, solver.Verify(result.Solution, cat))

	summary := Summarize(result.Solution)
	assert.Equal(t, 39, summary.TotalAssignments) // (3+2+3+3+2) sessions x 3 groups
	assert.Equal(t, 5, summary.CoursesScheduled)
	assert.Equal(t, 3, summary.GroupsScheduled)
}

func TestSolveDeterministicUnderSeed(t *testing.T) {
	// Arrange
	cat := catalog.Sample()
	solver1 := NewSolver(rand.New(rand.NewSource(42)))
	solver2 := NewSolver(rand.New(rand.NewSource(42)))

	// Act
	result1 := solver1.Solve(cat)
	result2 := solver2.Solve(cat)

	// Assert
	require.Equal(t, Scheduled, result1.Kind)
	assert.Equal(t, result1, result2)
}

func TestSolveBudgetExhausted(t *testing.T) {
	// Arrange: 39 sessions cannot possibly be placed within 10 trials
	cat := catalog.Sample()
	solver := NewSolver(rand.New(rand.NewSource(1)), WithBudget(10))

	// Act
	result := solver.Solve(cat)

	// Assert
	assert.Equal(t, BudgetExhausted, result.Kind)
	assert.Empty(t, result.Solution)
}

func TestVerifyRejectsTamperedSolutions(t *testing.T) {
	// Arrange
	cat := catalog.Sample()
	solver := NewSolver(rand.New(rand.NewSource(1)))
	result := solver.Solve(cat)
	require.Equal(t, Scheduled, result.Kind)

	t.Run("duplicated assignment", func(t *testing.T) {
		tampered := append(Solution{}, result.Solution...)
		tampered = append(tampered, tampered[0])

		assert.False(t, solver.Verify(tampered, cat))
	})

	t.Run("dropped assignment", func(t *testing.T) {
		tampered := append(Solution{}, result.Solution[1:]...)

		assert.False(t, solver.Verify(tampered, cat))
	})

	t.Run("mismatched room type", func(t *testing.T) {
		tampered := append(Solution{}, result.Solution...)
		tampered[0].RoomType = catalog.Lab
		tampered[0].CourseType = catalog.Theory

		assert.False(t, solver.Verify(tampered, cat))
	})
}
