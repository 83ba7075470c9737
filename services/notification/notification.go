package notification

import (
	"context"
	"fmt"
	"strconv"

	"servicehub/models"
	"servicehub/services/tasks"
	"servicehub/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Notify stores an in-app notification and queues a push for it.
// A failed enqueue is logged; the in-app copy is still kept.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID int64, title, message, link string) error {
	n, err := s.Repo.Create(ctx, models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Link:      link,
		CreatedAt: s.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	if s.Queue == nil {
		return nil
	}

	task, opts, err := tasks.NewPushTask(models.PushPayload{
		UserID:         userID,
		NotificationID: n.ID,
		Title:          title,
		Body:           message,
		Link:           link,
	})
	if err != nil {
		return fmt.Errorf("failed to build push task: %w", err)
	}
	if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		utils.GetLogger().Warn("Notify: failed to enqueue push",
			zap.Int64("userID", userID), zap.Int64("notificationID", n.ID), zap.Error(err))
	}
	return nil
}

func (s *DefaultNotificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error) {
	return s.Repo.MarkRead(ctx, userID, id)
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	return s.Repo.MarkAllRead(ctx, userID)
}

// SendPush looks up the user's FCM token and sends the message.
func (s *DefaultNotificationService) SendPush(ctx context.Context, p models.PushPayload) error {
	logger := utils.GetLogger()
	if s.Messenger == nil {
		logger.Debug("SendPush: messaging disabled, dropping push", zap.Int64("userID", p.UserID))
		return nil
	}
	u, err := s.Users.GetByID(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find user %d: %w", p.UserID, err)
	}
	if u.FCMToken == "" {
		logger.Debug("SendPush: user has no FCM token", zap.Int64("userID", p.UserID))
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data: map[string]string{
			"notificationId": strconv.FormatInt(p.NotificationID, 10),
			"link":           p.Link,
			"role":           u.Role,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	id, err := s.Messenger.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	logger.Debug("SendPush: delivered", zap.Int64("userID", p.UserID), zap.String("messageID", id))
	return nil
}
