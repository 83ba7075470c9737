package notification

import (
	"context"
	"time"

	notificationRepo "servicehub/database/repository/notification"
	userRepo "servicehub/database/repository/user"
	"servicehub/models"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
)

// NotificationService stores in-app notifications and fans them out as FCM pushes.
type NotificationService interface {
	Notify(ctx context.Context, userID int64, title, message, link string) error
	List(ctx context.Context, userID int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int, error)
	// SendPush delivers one queued push. Users without a device token are skipped.
	SendPush(ctx context.Context, p models.PushPayload) error
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Messenger is satisfied by *messaging.Client.
type Messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Users     userRepo.UserRepository
	Queue     Enqueuer
	Messenger Messenger
	Now       func() time.Time
}

var _ NotificationService = (*DefaultNotificationService)(nil)

// NewDefaultNotificationService wires the in-app store. Queue and Messenger
// may be nil, in which case pushes are not sent.
func NewDefaultNotificationService(repo notificationRepo.NotificationRepository, users userRepo.UserRepository, queue Enqueuer, messenger Messenger) *DefaultNotificationService {
	return &DefaultNotificationService{
		Repo:      repo,
		Users:     users,
		Queue:     queue,
		Messenger: messenger,
		Now:       time.Now,
	}
}
