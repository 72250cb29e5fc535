package notification

import (
	"context"
	"fmt"

	userRepo "caresync/database/repository/user"
	"caresync/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

// SendPush looks up the user's FCM token and sends a push notification.
func (s *DefaultNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("SendPush: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendPush: failed to send to user %s: %w", userID, err)
	}
	utils.GetLogger().Debug("push sent", zap.String("userId", userID), zap.String("messageId", id))
	return nil
}
