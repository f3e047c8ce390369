package domain

import "fmt"

// DaysPerWeek is the number of rows in a weekly plan (Monday first)
const DaysPerWeek = 7

// WeeklyPlan is a 7 x N grid of planned minutes, one column per exercise.
// Both the exercise list and the grid are copied at construction.
type WeeklyPlan struct {
	exercises []Exercise
	minutes   [DaysPerWeek][]int
}

// NewWeeklyPlan builds a plan. Each row of minutes must have one value per exercise.
func NewWeeklyPlan(exercises []Exercise, minutes [DaysPerWeek][]int) (*WeeklyPlan, error) {
	if exercises == nil {
		return nil, invalidArg("exercises", "must not be nil")
	}

	p := &WeeklyPlan{
		exercises: make([]Exercise, len(exercises)),
	}
	copy(p.exercises, exercises)

	for day, row := range minutes {
		if len(row) != len(exercises) {
			return nil, invalidArg("minutes", fmt.Sprintf("day %d has %d values, want %d", day, len(row), len(exercises)))
		}
		p.minutes[day] = make([]int, len(row))
		copy(p.minutes[day], row)
	}

	return p, nil
}

// Exercises returns a copy of the plan's exercises (the grid columns)
func (p *WeeklyPlan) Exercises() []Exercise {
	out := make([]Exercise, len(p.exercises))
	copy(out, p.exercises)
	return out
}

// Minutes returns the planned minutes for an exercise on a day (0 = Monday)
func (p *WeeklyPlan) Minutes(day, exerciseIndex int) int {
	return p.minutes[day][exerciseIndex]
}

// Row returns a copy of one day's planned minutes
func (p *WeeklyPlan) Row(day int) []int {
	out := make([]int, len(p.minutes[day]))
	copy(out, p.minutes[day])
	return out
}

// Days always returns 7
func (p *WeeklyPlan) Days() int { return DaysPerWeek }

// ExerciseCount returns the number of columns
func (p *WeeklyPlan) ExerciseCount() int { return len(p.exercises) }

// TotalForDay sums the planned minutes of one day
func (p *WeeklyPlan) TotalForDay(day int) int {
	total := 0
	for _, m := range p.minutes[day] {
		total += m
	}
	return total
}

// TotalForWeek sums every cell of the grid
func (p *WeeklyPlan) TotalForWeek() int {
	total := 0
	for day := range p.minutes {
		total += p.TotalForDay(day)
	}
	return total
}
