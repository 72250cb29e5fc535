package scheduling

import (
	"fmt"
	"time"

	appointmentRepo "caresync/database/repository/appointment"
	scheduleRepo "caresync/database/repository/schedule"
)

// slotMinutes is the fixed length of a bookable slot.
const slotMinutes = 30

// AvailabilityService computes free bookable slots for a doctor on a date.
type AvailabilityService interface {
	// GetFreeSlots returns the ordered 12-hour labels ("9:00 AM") of free
	// 30-minute slots for the provider on the given "YYYY-MM-DD" date. A
	// missing template, disabled day, malformed rule or unparseable date all
	// yield an empty result, not an error; only a store failure errors.
	GetFreeSlots(providerID, date string) ([]string, error)
}

// DefaultAvailabilityService is a concrete implementation. Loc is the clinic
// time zone all weekday and slot computations run in; it is injected rather
// than taken from the process environment.
type DefaultAvailabilityService struct {
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	Loc          *time.Location
}

func (s *DefaultAvailabilityService) location() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return time.Local
}

// GetFreeSlots computes the free slots for a provider on a date.
func (s *DefaultAvailabilityService) GetFreeSlots(providerID, date string) ([]string, error) {
	loc := s.location()

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		// An unparseable date resolves to no weekday, hence no rule.
		return []string{}, nil
	}

	schedule, err := s.Schedules.GetByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("availability: schedule lookup failed: %w", err)
	}
	if schedule == nil {
		return []string{}, nil
	}

	rule, ok := schedule.RuleFor(day.Weekday())
	if !ok || !rule.Enabled {
		return []string{}, nil
	}

	startMin, okStart := parseClock(rule.Start)
	endMin, okEnd := parseClock(rule.End)
	if !okStart || !okEnd || endMin <= startMin {
		return []string{}, nil
	}

	// The day window runs local midnight to midnight, both boundaries
	// inclusive.
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.Appointments.ListByProviderBetween(providerID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("availability: booking lookup failed: %w", err)
	}

	taken := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		taken[b.ScheduledAt.In(loc).Format("15:04")] = struct{}{}
	}

	slots := []string{}
	for m := startMin; m+slotMinutes <= endMin; m += slotMinutes {
		if _, booked := taken[clockLabel(m)]; booked {
			continue
		}
		slots = append(slots, twelveHourLabel(m))
	}
	return slots, nil
}

// parseClock converts an "HH:MM" 24-hour string to minutes since midnight.
func parseClock(v string) (int, bool) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// clockLabel renders minutes since midnight as a zero-padded "HH:MM" string.
func clockLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// twelveHourLabel renders minutes since midnight as a 12-hour label, e.g.
// "9:00 AM".
func twelveHourLabel(minutes int) string {
	t := time.Date(0, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}
