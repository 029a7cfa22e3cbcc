package notificationRepo

import (
	"context"
	"errors"
	"time"

	"fixify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, n)
	return err
}

// ListByRecipient fetches a recipient's notifications, newest first.
func (r *mongoNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"recipient_id": recipientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a notification as read. The recipient filter stops one user
// from acking another's rows.
func (r *mongoNotificationRepo) MarkRead(ctx context.Context, id, recipientID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "recipient_id": recipientID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("notification not found")
	}
	return nil
}
