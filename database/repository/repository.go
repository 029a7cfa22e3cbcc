package repository

import (
	bookingRepo "fixify/database/repository/booking"
	catalogRepo "fixify/database/repository/catalog"
	notificationRepo "fixify/database/repository/notification"
	settlementRepo "fixify/database/repository/settlement"
	userRepo "fixify/database/repository/user"
)

// Re-export the repository interfaces and constructors.

type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

type ServiceRepository = catalogRepo.ServiceRepository

var NewMongoServiceRepo = catalogRepo.NewMongoServiceRepo

type SettlementRepository = settlementRepo.SettlementRepository

var NewMongoSettlementRepo = settlementRepo.NewMongoSettlementRepo

type NotificationRepository = notificationRepo.NotificationRepository

var NewMongoNotificationRepo = notificationRepo.NewMongoNotificationRepo

type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo
