package notification

import (
	"context"
	"encoding/json"

	"fixify/database/repository"
	"fixify/models"
	"fixify/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NotifyInput describes one in-app notification to fan out.
type NotifyInput struct {
	RecipientID string
	Title       string
	Message     string
	Type        string
	RelatedID   string
	RelatedType string
	ActionPath  string
	Priority    string
}

// NotificationService persists in-app notification rows, best-effort. Notify
// must never surface an error to the caller: a lost notification is
// acceptable, a failed booking operation because of one is not.
type NotificationService interface {
	Notify(ctx context.Context, input NotifyInput)
	ListForRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}

// DefaultNotificationService enqueues notifications onto the async queue and
// falls back to a direct insert when the queue is unavailable.
type DefaultNotificationService struct {
	Repo  repository.NotificationRepository
	Queue *asynq.Client // nil disables queueing, rows are inserted inline
}

// Notify fans out one notification. All failures are logged and swallowed.
func (s *DefaultNotificationService) Notify(ctx context.Context, input NotifyInput) {
	logger := utils.GetLogger()

	if input.RecipientID == "" {
		logger.Warn("notification dropped: missing recipient")
		return
	}
	if input.Priority == "" {
		input.Priority = models.NotificationPriorityMedium
	}

	if s.Queue != nil {
		payload, err := json.Marshal(input)
		if err == nil {
			task := asynq.NewTask(TypeNotificationCreate, payload)
			if _, err := s.Queue.EnqueueContext(ctx, task); err == nil {
				return
			}
			logger.Warn("notification enqueue failed, inserting inline",
				zap.String("recipient", input.RecipientID))
		}
	}

	if err := s.Repo.Create(ctx, input.toRow()); err != nil {
		logger.Warn("notification insert failed",
			zap.String("recipient", input.RecipientID), zap.Error(err))
	}
}

// ListForRecipient returns a recipient's notifications, newest first.
func (s *DefaultNotificationService) ListForRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(ctx, recipientID)
}

// MarkRead flags one of the recipient's notifications as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.Repo.MarkRead(ctx, id, recipientID)
}

func (in NotifyInput) toRow() *models.Notification {
	return &models.Notification{
		RecipientID: in.RecipientID,
		Title:       in.Title,
		Message:     in.Message,
		Type:        in.Type,
		RelatedID:   in.RelatedID,
		RelatedType: in.RelatedType,
		ActionPath:  in.ActionPath,
		Priority:    in.Priority,
	}
}
