package reminder

import (
	"errors"
	"fmt"
	"time"

	reminderRepo "caresync/database/repository/reminder"
	"caresync/models"
	"caresync/services/tasks"
	"caresync/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var (
	// ErrNotFound means the reminder does not exist.
	ErrNotFound = errors.New("reminder not found")
	// ErrInvalidKind means the reminder kind is not recognized.
	ErrInvalidKind = errors.New("invalid reminder kind")
)

// ReminderService schedules and manages push reminders.
type ReminderService interface {
	Create(userID string, req models.CreateReminderRequest) (*models.Reminder, error)
	Get(id string) (*models.Reminder, error)
	ListForUser(userID string) ([]models.Reminder, error)
	Delete(id string) error
}

// DefaultReminderService is the production implementation. Queue is the asynq
// client used to enqueue delayed delivery tasks.
type DefaultReminderService struct {
	Repo  reminderRepo.ReminderRepository
	Queue *asynq.Client
}

// Create persists the reminder and enqueues its delivery at fireAt.
func (s *DefaultReminderService) Create(userID string, req models.CreateReminderRequest) (*models.Reminder, error) {
	if req.Kind != models.ReminderMedication && req.Kind != models.ReminderAppointment {
		return nil, ErrInvalidKind
	}
	if req.FireAt.Before(time.Now()) {
		return nil, fmt.Errorf("fireAt must be in the future")
	}

	rem := &models.Reminder{
		ID:     uuid.NewString(),
		UserID: userID,
		Kind:   req.Kind,
		Title:  req.Title,
		Body:   req.Body,
		FireAt: req.FireAt,
		RefID:  req.RefID,
	}
	if err := s.Repo.Create(rem); err != nil {
		return nil, err
	}

	payload := models.ReminderPayload{
		ReminderID: rem.ID,
		UserID:     rem.UserID,
		Title:      rem.Title,
		Body:       rem.Body,
		FireDate:   rem.FireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, rem.FireAt)
	if err != nil {
		return nil, fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		// The reminder stays stored; delivery just will not fire.
		utils.GetLogger().Error("failed to enqueue reminder", zap.String("reminderId", rem.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to schedule reminder: %w", err)
	}

	return rem, nil
}

// Get fetches a single reminder.
func (s *DefaultReminderService) Get(id string) (*models.Reminder, error) {
	rem, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rem == nil {
		return nil, ErrNotFound
	}
	return rem, nil
}

// ListForUser returns the user's reminders ordered by fire time.
func (s *DefaultReminderService) ListForUser(userID string) ([]models.Reminder, error) {
	return s.Repo.ListByUser(userID)
}

// Delete removes a reminder. An already-enqueued task for it becomes a no-op
// at delivery time because the worker re-checks the store.
func (s *DefaultReminderService) Delete(id string) error {
	return s.Repo.Delete(id)
}
