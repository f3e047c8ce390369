package planning

import (
	"log/slog"

	"github.com/tygara/practicetracker/internal/domain"
)

// Days labels the rows of a weekly plan, Monday first
var Days = [domain.DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Service builds weekly practice plans
type Service struct {
	logger *slog.Logger
}

// NewService creates a new planning service
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Generate builds a 7 x N plan where every day gets each exercise's daily
// target. There is no weekday variation, rest days or load balancing.
// A nil slice is rejected; an empty one yields a plan with no columns.
func (s *Service) Generate(exercises []domain.Exercise) (*domain.WeeklyPlan, error) {
	plan, err := Generate(exercises)
	if err != nil {
		s.logger.Debug("plan generation rejected", "error", err)
		return nil, err
	}
	s.logger.Debug("plan generated", "exercises", plan.ExerciseCount(), "weekly_minutes", plan.TotalForWeek())
	return plan, nil
}

// Generate is the pure form of Service.Generate
func Generate(exercises []domain.Exercise) (*domain.WeeklyPlan, error) {
	if exercises == nil {
		return nil, &domain.InvalidArgumentError{Field: "exercises", Message: "must not be nil"}
	}

	var minutes [domain.DaysPerWeek][]int
	for day := range minutes {
		row := make([]int, len(exercises))
		for i, ex := range exercises {
			row[i] = ex.TargetMinutesPerDay()
		}
		minutes[day] = row
	}

	return domain.NewWeeklyPlan(exercises, minutes)
}
