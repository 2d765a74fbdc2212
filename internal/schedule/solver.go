package schedule

import (
	"math/rand"

	"smarttable/internal/catalog"
)

// DefaultBudget is the number of candidate trials a run may spend before it
// gives up with BudgetExhausted. A trial is one evaluator check of a
// (teacher, room, timeslot) triple.
const DefaultBudget = 2_000_000

// Solver assigns every required session of every (course, group) pair to a
// (teacher, room, timeslot) triple, or reports that it cannot. The policy is
// all-or-nothing: a run never surfaces a partial solution.
type Solver interface {
	Solve(cat catalog.Catalog) Result

	// Verify re-checks a solution against the catalog independently of the
	// search: no teacher, room or group is double-booked, every room type
	// matches its course type, and every (course, group) pair has exactly
	// its required number of sessions.
	Verify(solution Solution, cat catalog.Catalog) bool
}

type Option func(*backtrackingSolver)

// WithBudget overrides the trial budget for every run of the solver.
func WithBudget(trials int) Option {
	return func(solver *backtrackingSolver) {
		solver.budget = trials
	}
}

// NewSolver builds a solver over the given rand source. The source drives the
// course, group and teacher shuffles, so two solvers seeded identically
// produce identical solutions for identical catalogs.
func NewSolver(rng *rand.Rand, options ...Option) Solver {
	solver := newBacktrackingSolver(rng)
	for _, option := range options {
		option(solver)
	}
	return solver
}
