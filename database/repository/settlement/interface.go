package settlementRepo

import (
	"context"
	"time"

	"fixify/database"
	"fixify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettlementRepository persists the financial records produced when a booking
// completes: the payment, the earnings ledger row and the invoice, plus the
// booking status flip, all as one atomic unit.
type SettlementRepository interface {
	SettleBooking(ctx context.Context, booking *models.Booking, payment *models.Payment, earning *models.PlatformEarning, invoice *models.Invoice) error
	GetPaymentByBookingID(ctx context.Context, bookingID string) (*models.Payment, error)
	GetInvoiceByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error)
	AggregateEarnings(ctx context.Context, from, to time.Time) (*models.EarningsReport, error)
}

type mongoSettlementRepo struct {
	bookingColl *mongo.Collection
	paymentColl *mongo.Collection
	earningColl *mongo.Collection
	invoiceColl *mongo.Collection
}

// NewMongoSettlementRepo returns a SettlementRepository backed by MongoDB.
func NewMongoSettlementRepo() SettlementRepository {
	db := database.DB()
	return &mongoSettlementRepo{
		bookingColl: db.Collection("bookings"),
		paymentColl: db.Collection("payments"),
		earningColl: db.Collection("platform_earnings"),
		invoiceColl: db.Collection("invoices"),
	}
}
