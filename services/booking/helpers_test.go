package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "fixify/database/repository/booking"
	catalogRepo "fixify/database/repository/catalog"
	settlementRepo "fixify/database/repository/settlement"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/services/notification"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	updates  int
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		copied := *b
		repo.bookings[b.ID] = &copied
	}
	return repo
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = "generated-id"
	}
	b.CreatedAt = time.Now()
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	r.updates++
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakeCatalogRepo struct {
	services map[string]*models.Service
}

func (r *fakeCatalogRepo) Create(ctx context.Context, s *models.Service) error {
	r.services[s.ID] = s
	return nil
}

func (r *fakeCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return s, nil
}

func (r *fakeCatalogRepo) Update(ctx context.Context, s *models.Service) error { return nil }

func (r *fakeCatalogRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) ListActive(ctx context.Context, category string) ([]models.Service, error) {
	return nil, nil
}

// fakeSettlementRepo records settlements and mirrors the booking status flip
// the Mongo transaction performs.
type fakeSettlementRepo struct {
	bookings *fakeBookingRepo
	payments []*models.Payment
	earnings []*models.PlatformEarning
	invoices []*models.Invoice
	failWith error
}

func (r *fakeSettlementRepo) SettleBooking(ctx context.Context, b *models.Booking, p *models.Payment, e *models.PlatformEarning, inv *models.Invoice) error {
	if r.failWith != nil {
		return r.failWith
	}
	stored, ok := r.bookings.bookings[b.ID]
	if !ok || stored.Status != models.BookingStatusInProgress {
		return settlementRepo.ErrAlreadySettled
	}
	stored.Status = models.BookingStatusCompleted
	stored.TotalAmount = &p.Amount
	r.payments = append(r.payments, p)
	r.earnings = append(r.earnings, e)
	r.invoices = append(r.invoices, inv)
	return nil
}

func (r *fakeSettlementRepo) GetPaymentByBookingID(ctx context.Context, bookingID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			return p, nil
		}
	}
	return nil, errors.New("payment not found")
}

func (r *fakeSettlementRepo) GetInvoiceByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.BookingID == bookingID {
			return inv, nil
		}
	}
	return nil, settlementRepo.ErrInvoiceNotFound
}

func (r *fakeSettlementRepo) AggregateEarnings(ctx context.Context, from, to time.Time) (*models.EarningsReport, error) {
	report := &models.EarningsReport{}
	for _, e := range r.earnings {
		report.TotalGross += e.ServiceAmount
		report.TotalCommission += e.CommissionAmount
		report.TotalProvider += e.ProviderAmount
		report.Count++
	}
	return report, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

type fakeNotifier struct {
	sent []notification.NotifyInput
}

func (n *fakeNotifier) Notify(ctx context.Context, input notification.NotifyInput) {
	n.sent = append(n.sent, input)
}

func (n *fakeNotifier) ListForRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, id, recipientID string) error { return nil }

type fakeVerifier struct {
	ok bool
}

func (v fakeVerifier) Verify(orderID, paymentID, signature string) bool { return v.ok }

type fakeLocker struct {
	denied   bool
	acquired []string
	released []string
}

func (l *fakeLocker) Acquire(ctx context.Context, bookingID string) (bool, error) {
	if l.denied {
		return false, nil
	}
	l.acquired = append(l.acquired, bookingID)
	return true, nil
}

func (l *fakeLocker) Release(ctx context.Context, bookingID string) {
	l.released = append(l.released, bookingID)
}

// newTestService assembles a DefaultBookingService over the fakes with one
// in-progress booking (B1, provider P1, customer C1) preloaded.
func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeSettlementRepo, *fakeNotifier) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID:          "booking-b1",
		CustomerID:  "C1",
		ProviderID:  "P1",
		ServiceID:   "svc-1",
		ServiceName: "Deep Cleaning",
		Status:      models.BookingStatusInProgress,
	})
	settlements := &fakeSettlementRepo{bookings: bookings}
	notifier := &fakeNotifier{}

	svc := &DefaultBookingService{
		Repo:           bookings,
		CatalogRepo:    &fakeCatalogRepo{services: map[string]*models.Service{}},
		SettlementRepo: settlements,
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"C1": {ID: "C1", Role: models.RoleCustomer, Name: "Casey", Email: "casey@example.com"},
			"P1": {ID: "P1", Role: models.RoleProvider, Name: "Pat", Email: "pat@example.com"},
		}},
		NotificationSvc: notifier,
		Verifier:        fakeVerifier{ok: true},
		Locker:          &fakeLocker{},
		CommissionRate:  0.15,
	}
	return svc, bookings, settlements, notifier
}
