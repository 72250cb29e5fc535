package scheduling

import (
	"testing"

	"caresync/models"
)

func TestUpdateScheduleRejectsUnknownWeekday(t *testing.T) {
	svc := &DefaultScheduleService{Repo: &mockScheduleRepo{}}

	_, err := svc.UpdateSchedule("doc-1", models.UpdateScheduleRequest{
		Days: map[string]models.DayRule{
			"monday": {Enabled: true, Start: "09:00", End: "17:00"},
		},
	})
	if err == nil {
		t.Fatal("expected error for unknown weekday key")
	}
}

func TestUpdateScheduleRejectsBadClock(t *testing.T) {
	svc := &DefaultScheduleService{Repo: &mockScheduleRepo{}}

	for _, rule := range []models.DayRule{
		{Enabled: true, Start: "9am", End: "17:00"},
		{Enabled: true, Start: "09:00", End: "25:00"},
		{Enabled: true, Start: "17:00", End: "09:00"},
		{Enabled: true, Start: "09:00", End: "09:00"},
	} {
		_, err := svc.UpdateSchedule("doc-1", models.UpdateScheduleRequest{
			Days: map[string]models.DayRule{"mon": rule},
		})
		if err == nil {
			t.Fatalf("expected error for rule %+v", rule)
		}
	}
}

func TestUpdateScheduleIgnoresDisabledRuleTimes(t *testing.T) {
	repo := &mockScheduleRepo{}
	svc := &DefaultScheduleService{Repo: repo}

	// A disabled day may carry stale or empty clock strings.
	schedule, err := svc.UpdateSchedule("doc-1", models.UpdateScheduleRequest{
		Days: map[string]models.DayRule{
			"mon": {Enabled: false, Start: "", End: ""},
			"tue": {Enabled: true, Start: "09:00", End: "12:00"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule.ProviderID != "doc-1" || len(schedule.Days) != 2 {
		t.Fatalf("unexpected schedule: %+v", schedule)
	}
}

func TestGetScheduleReturnsEmptyTemplateWhenUnset(t *testing.T) {
	svc := &DefaultScheduleService{Repo: &mockScheduleRepo{}}

	schedule, err := svc.GetSchedule("doc-unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule == nil || schedule.ProviderID != "doc-unknown" || len(schedule.Days) != 0 {
		t.Fatalf("expected empty template, got %+v", schedule)
	}
}
