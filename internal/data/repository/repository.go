package repository

import (
	"petconnect/pkg/database"

	"go.uber.org/zap"
)

// Repository bundles every data access interface behind one value so
// the wiring layer hands a single dependency to the usecases.
type Repository struct {
	User     UserRepository
	Customer CustomerRepository
	Seller   SellerRepository
	Walker   WalkerRepository
	Service  ServiceRepository
	Schedule ScheduleRepository
	Booking  BookingRepository
	Category CategoryRepository
	Product  ProductRepository
	Order    OrderRepository
	Review   ReviewRepository
	Session  SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Seller:   NewSellerRepository(db, log),
		Walker:   NewWalkerRepository(db, log),
		Service:  NewServiceRepository(db, log),
		Schedule: NewScheduleRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Order:    NewOrderRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Session:  NewSessionRepository(db, log),
	}
}
