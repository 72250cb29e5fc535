package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"caresync/config"
	reminderRepo "caresync/database/repository/reminder"
	"caresync/models"
	"caresync/services/notification"
	"caresync/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService, reminders reminderRepo.ReminderRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, reminders))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, reminders reminderRepo.ReminderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		// The reminder may have been deleted since it was enqueued.
		rem, err := reminders.GetByID(p.ReminderID)
		if err != nil {
			return err
		}
		if rem == nil || rem.Sent {
			return nil
		}

		data := map[string]string{
			"type":       "reminder",
			"reminderId": p.ReminderID,
			"fireDate":   p.FireDate,
		}
		if err := notifSvc.SendPush(ctx, p.UserID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderWorker] push failed for reminder %s: %v", p.ReminderID, err)
			return err
		}

		if err := reminders.MarkSent(p.ReminderID); err != nil {
			log.Printf("[ReminderWorker] failed to mark reminder %s sent: %v", p.ReminderID, err)
		}
		return nil
	}
}
