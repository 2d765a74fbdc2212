package schedule

import (
	"slices"

	"github.com/samber/lo"
)

var weekOrder = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

type PeriodSchedule struct {
	Period      int          `json:"period"`
	Assignments []Assignment `json:"assignments"`
}

type DaySchedule struct {
	Day     string           `json:"day"`
	Periods []PeriodSchedule `json:"periods"`
}

// FormattedSolution is a solution partitioned by day and then by period, with
// periods in ascending order within each day. Weekday names sort in week
// order; any other day label keeps its first appearance order.
type FormattedSolution []DaySchedule

// Flatten concatenates all day and period buckets back into a single
// sequence. The result is a permutation of the solution Format was given.
func (formatted FormattedSolution) Flatten() Solution {
	flattened := make(Solution, 0)
	for _, day := range formatted {
		for _, period := range day.Periods {
			flattened = append(flattened, period.Assignments...)
		}
	}
	return flattened
}

func Format(solution Solution) FormattedSolution {
	buckets := make(map[string]map[int][]Assignment)
	firstSeen := make(map[string]int)

	for _, assignment := range solution {
		if _, ok := buckets[assignment.Day]; !ok {
			buckets[assignment.Day] = make(map[int][]Assignment)
			firstSeen[assignment.Day] = len(firstSeen)
		}
		buckets[assignment.Day][assignment.Period] = append(buckets[assignment.Day][assignment.Period], assignment)
	}

	days := lo.Keys(buckets)
	slices.SortFunc(days, func(day1, day2 string) int {
		return dayRank(day1, firstSeen) - dayRank(day2, firstSeen)
	})

	formatted := make(FormattedSolution, 0, len(days))
	for _, day := range days {
		periods := lo.Keys(buckets[day])
		slices.Sort(periods)

		daySchedule := DaySchedule{Day: day, Periods: make([]PeriodSchedule, 0, len(periods))}
		for _, period := range periods {
			daySchedule.Periods = append(daySchedule.Periods, PeriodSchedule{
				Period:      period,
				Assignments: buckets[day][period],
			})
		}
		formatted = append(formatted, daySchedule)
	}

	return formatted
}

func dayRank(day string, firstSeen map[string]int) int {
	if rank, ok := weekOrder[day]; ok {
		return rank
	}
	return len(weekOrder) + firstSeen[day]
}

type Summary struct {
	TotalAssignments int `json:"total_assignments"`
	CoursesScheduled int `json:"courses_scheduled"`
	TeachersUsed     int `json:"teachers_used"`
	RoomsUsed        int `json:"rooms_used"`
	GroupsScheduled  int `json:"groups_scheduled"`
}

// Summarize returns the aggregate counts of a solution; all counts are zero
// for an empty one.
func Summarize(solution Solution) Summary {
	return Summary{
		TotalAssignments: len(solution),
		CoursesScheduled: len(lo.UniqBy(solution, func(assignment Assignment) string { return assignment.CourseCode })),
		TeachersUsed:     len(lo.UniqBy(solution, func(assignment Assignment) string { return assignment.TeacherName })),
		RoomsUsed:        len(lo.UniqBy(solution, func(assignment Assignment) string { return assignment.RoomNumber })),
		GroupsScheduled:  len(lo.UniqBy(solution, func(assignment Assignment) string { return assignment.GroupName })),
	}
}
