package models

import "time"

// Weekday keys used in a weekly schedule, indexed Sunday through Saturday.
var WeekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// DayRule is a doctor's working window for one weekday. A disabled or missing
// rule yields no bookable slots for that day.
type DayRule struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Start   string `bson:"start,omitempty" json:"start,omitempty"` // "HH:MM", 24-hour
	End     string `bson:"end,omitempty" json:"end,omitempty"`     // "HH:MM", 24-hour
}

// WeeklySchedule is a doctor's availability template, one rule per weekday key.
type WeeklySchedule struct {
	ProviderID string             `bson:"providerId" json:"providerId"`
	Days       map[string]DayRule `bson:"days" json:"days"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RuleFor returns the rule for the given weekday (time.Weekday ordering,
// 0=Sunday). The second return is false when no rule is configured.
func (s *WeeklySchedule) RuleFor(weekday time.Weekday) (DayRule, bool) {
	if s == nil || s.Days == nil {
		return DayRule{}, false
	}
	if weekday < 0 || int(weekday) >= len(WeekdayKeys) {
		return DayRule{}, false
	}
	rule, ok := s.Days[WeekdayKeys[weekday]]
	return rule, ok
}

// UpdateScheduleRequest is the payload for replacing a doctor's weekly template.
type UpdateScheduleRequest struct {
	Days map[string]DayRule `json:"days" binding:"required"`
}
