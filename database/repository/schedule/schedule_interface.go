package scheduleRepo

import "caresync/models"

// ScheduleRepository defines persistence operations for weekly availability
// templates.
type ScheduleRepository interface {
	// GetByProvider returns the provider's template, or (nil, nil) when the
	// provider has none configured.
	GetByProvider(providerID string) (*models.WeeklySchedule, error)
	Upsert(schedule *models.WeeklySchedule) error
	Delete(providerID string) error
}
