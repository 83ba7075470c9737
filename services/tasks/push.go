package tasks

import (
	"encoding/json"

	"servicehub/models"

	"github.com/hibiken/asynq"
)

const TypeNotificationPush = "notification:push"

// NewPushTask wraps a push payload for the async worker.
func NewPushTask(payload models.PushPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotificationPush, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Queue("default")}

	return task, opts, nil
}

// ParsePushTask decodes the payload of a push task.
func ParsePushTask(task *asynq.Task) (models.PushPayload, error) {
	var p models.PushPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
