package handlers

// HandlerBundle aggregates the handler groups wired in main and handed to the
// route registrar.
type HandlerBundle struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Payment      *PaymentHandler
	Catalog      *CatalogHandler
	Notification *NotificationHandler
}
