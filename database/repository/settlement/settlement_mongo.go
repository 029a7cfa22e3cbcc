package settlementRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadySettled is returned when the booking is no longer in-progress at
// commit time, i.e. another settlement won the race or the booking was
// cancelled in between.
var ErrAlreadySettled = errors.New("booking is not in-progress")

// ErrInvoiceNotFound is returned when no invoice exists for the booking.
var ErrInvoiceNotFound = errors.New("invoice not found")

// SettleBooking flips the booking to completed and inserts the payment,
// earnings and invoice documents inside a single Mongo transaction. The
// status filter doubles as an optimistic guard: if the booking left
// in-progress since it was read, nothing is written.
func (r *mongoSettlementRepo) SettleBooking(
	ctx context.Context,
	booking *models.Booking,
	payment *models.Payment,
	earning *models.PlatformEarning,
	invoice *models.Invoice,
) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id":     booking.ID,
			"status": models.BookingStatusInProgress,
		}
		update := bson.M{
			"$set": bson.M{
				"status":       models.BookingStatusCompleted,
				"total_amount": payment.Amount,
				"updated_at":   time.Now(),
			},
		}
		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("booking status update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrAlreadySettled
		}

		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}
		if _, err := r.earningColl.InsertOne(sc, earning); err != nil {
			return fmt.Errorf("insert platform earning failed: %w", err)
		}
		if _, err := r.invoiceColl.InsertOne(sc, invoice); err != nil {
			return fmt.Errorf("insert invoice failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrAlreadySettled) {
			return ErrAlreadySettled
		}
		return fmt.Errorf("settlement transaction failed: %w", err)
	}

	return nil
}

// GetPaymentByBookingID returns the payment recorded for a booking.
func (r *mongoSettlementRepo) GetPaymentByBookingID(ctx context.Context, bookingID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.paymentColl.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetInvoiceByBookingID returns the invoice generated for a booking.
func (r *mongoSettlementRepo) GetInvoiceByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.invoiceColl.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// AggregateEarnings sums completed ledger rows over an optional date range.
func (r *mongoSettlementRepo) AggregateEarnings(ctx context.Context, from, to time.Time) (*models.EarningsReport, error) {
	match := bson.M{"status": models.EarningStatusCompleted}
	dateFilter := bson.M{}
	if !from.IsZero() {
		dateFilter["$gte"] = from
	}
	if !to.IsZero() {
		dateFilter["$lte"] = to
	}
	if len(dateFilter) > 0 {
		match["transaction_date"] = dateFilter
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_gross", Value: bson.D{{Key: "$sum", Value: "$service_amount"}}},
			{Key: "total_commission", Value: bson.D{{Key: "$sum", Value: "$commission_amount"}}},
			{Key: "total_provider", Value: bson.D{{Key: "$sum", Value: "$provider_amount"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.earningColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.EarningsReport
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &models.EarningsReport{}, nil
	}
	return &results[0], nil
}
