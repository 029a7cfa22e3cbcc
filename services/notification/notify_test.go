package notification

import (
	"context"
	"errors"
	"testing"

	"fixify/models"
)

type fakeNotificationRepo struct {
	rows       []*models.Notification
	createErr  error
	markedRead []string
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.rows = append(r.rows, n)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.rows {
		if n.RecipientID == recipientID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, recipientID string) error {
	r.markedRead = append(r.markedRead, id)
	return nil
}

func TestNotifyInsertsInlineWithoutQueue(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	svc.Notify(context.Background(), NotifyInput{
		RecipientID: "C1",
		Title:       "Booking confirmed",
		Message:     "Your booking is confirmed.",
		Type:        "booking",
		Priority:    models.NotificationPriorityHigh,
	})

	if len(repo.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(repo.rows))
	}
	row := repo.rows[0]
	if row.RecipientID != "C1" || row.Title != "Booking confirmed" || row.Priority != models.NotificationPriorityHigh {
		t.Errorf("row = %+v", row)
	}
}

func TestNotifyDefaultsPriorityToMedium(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	svc.Notify(context.Background(), NotifyInput{RecipientID: "C1", Title: "hi"})

	if len(repo.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(repo.rows))
	}
	if repo.rows[0].Priority != models.NotificationPriorityMedium {
		t.Errorf("priority = %s, want medium", repo.rows[0].Priority)
	}
}

func TestNotifyDropsMissingRecipient(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	svc.Notify(context.Background(), NotifyInput{Title: "orphan"})

	if len(repo.rows) != 0 {
		t.Errorf("rows = %d, want 0", len(repo.rows))
	}
}

func TestNotifySwallowsRepoErrors(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("mongo down")}
	svc := &DefaultNotificationService{Repo: repo}

	// Must not panic or surface the error.
	svc.Notify(context.Background(), NotifyInput{RecipientID: "C1", Title: "hi"})

	if len(repo.rows) != 0 {
		t.Errorf("rows = %d, want 0", len(repo.rows))
	}
}
