package scheduling

import (
	"fmt"
	"time"

	scheduleRepo "caresync/database/repository/schedule"
	"caresync/models"
)

// ScheduleService manages a doctor's weekly availability template.
type ScheduleService interface {
	GetSchedule(providerID string) (*models.WeeklySchedule, error)
	UpdateSchedule(providerID string, req models.UpdateScheduleRequest) (*models.WeeklySchedule, error)
}

// DefaultScheduleService is a concrete implementation.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

// GetSchedule returns the provider's template, or an empty template when none
// is configured yet.
func (s *DefaultScheduleService) GetSchedule(providerID string) (*models.WeeklySchedule, error) {
	schedule, err := s.Repo.GetByProvider(providerID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return &models.WeeklySchedule{ProviderID: providerID, Days: map[string]models.DayRule{}}, nil
	}
	return schedule, nil
}

// UpdateSchedule validates and replaces the provider's weekly template.
func (s *DefaultScheduleService) UpdateSchedule(providerID string, req models.UpdateScheduleRequest) (*models.WeeklySchedule, error) {
	if err := validateDays(req.Days); err != nil {
		return nil, err
	}

	schedule := &models.WeeklySchedule{
		ProviderID: providerID,
		Days:       req.Days,
	}
	if err := s.Repo.Upsert(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func validateDays(days map[string]models.DayRule) error {
	valid := make(map[string]struct{}, len(models.WeekdayKeys))
	for _, k := range models.WeekdayKeys {
		valid[k] = struct{}{}
	}

	for key, rule := range days {
		if _, ok := valid[key]; !ok {
			return fmt.Errorf("unknown weekday key %q", key)
		}
		if !rule.Enabled {
			continue
		}
		start, err := time.Parse("15:04", rule.Start)
		if err != nil {
			return fmt.Errorf("day %s: invalid start time %q", key, rule.Start)
		}
		end, err := time.Parse("15:04", rule.End)
		if err != nil {
			return fmt.Errorf("day %s: invalid end time %q", key, rule.End)
		}
		if !end.After(start) {
			return fmt.Errorf("day %s: end must be after start", key)
		}
	}
	return nil
}
