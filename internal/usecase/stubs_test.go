package usecase

import (
	"context"
	"time"

	"petconnect/internal/data/entity"
	"petconnect/internal/data/repository"

	"github.com/google/uuid"
)

// Function-field stubs for the repository interfaces. Tests assign only
// the methods a scenario touches; unassigned methods return zero values.

type stubCustomerRepo struct {
	CreateFn       func(ctx context.Context, customer *entity.Customer) error
	FindByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
}

func (s *stubCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customer)
	}
	return nil
}

func (s *stubCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubCustomerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	if s.FindByUserIDFn != nil {
		return s.FindByUserIDFn(ctx, userID)
	}
	return nil, nil
}

type stubSellerRepo struct {
	CreateFn       func(ctx context.Context, seller *entity.Seller) error
	FindByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	FindByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.Seller, error)
	ApproveFn      func(ctx context.Context, id uuid.UUID) error
}

func (s *stubSellerRepo) Create(ctx context.Context, seller *entity.Seller) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, seller)
	}
	return nil
}

func (s *stubSellerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubSellerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
	if s.FindByUserIDFn != nil {
		return s.FindByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubSellerRepo) Approve(ctx context.Context, id uuid.UUID) error {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, id)
	}
	return nil
}

type stubWalkerRepo struct {
	CreateFn         func(ctx context.Context, walker *entity.Walker) error
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Walker, error)
	FindByUserIDFn   func(ctx context.Context, userID uuid.UUID) (*entity.Walker, error)
	ApproveFn        func(ctx context.Context, id uuid.UUID) error
	UpdateWhatsAppFn func(ctx context.Context, id uuid.UUID, whatsapp *string, enabled bool) error
}

func (s *stubWalkerRepo) Create(ctx context.Context, walker *entity.Walker) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, walker)
	}
	return nil
}

func (s *stubWalkerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Walker, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubWalkerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Walker, error) {
	if s.FindByUserIDFn != nil {
		return s.FindByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubWalkerRepo) Approve(ctx context.Context, id uuid.UUID) error {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, id)
	}
	return nil
}

func (s *stubWalkerRepo) UpdateWhatsApp(ctx context.Context, id uuid.UUID, whatsapp *string, enabled bool) error {
	if s.UpdateWhatsAppFn != nil {
		return s.UpdateWhatsAppFn(ctx, id, whatsapp, enabled)
	}
	return nil
}

type stubServiceRepo struct {
	CreateFn         func(ctx context.Context, service *entity.Service) error
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindAvailableFn  func(ctx context.Context, filter repository.ServiceFilter, limit, offset int) ([]*entity.Service, error)
	CountAvailableFn func(ctx context.Context, filter repository.ServiceFilter) (int64, error)
	UpdateFn         func(ctx context.Context, service *entity.Service) error
	DeactivateFn     func(ctx context.Context, id uuid.UUID) error
	UpdateStatusFn   func(ctx context.Context, id uuid.UUID, status entity.ServiceStatus) error
}

func (s *stubServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, service)
	}
	return nil
}

func (s *stubServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubServiceRepo) FindAvailable(ctx context.Context, filter repository.ServiceFilter, limit, offset int) ([]*entity.Service, error) {
	if s.FindAvailableFn != nil {
		return s.FindAvailableFn(ctx, filter, limit, offset)
	}
	return nil, nil
}

func (s *stubServiceRepo) CountAvailable(ctx context.Context, filter repository.ServiceFilter) (int64, error) {
	if s.CountAvailableFn != nil {
		return s.CountAvailableFn(ctx, filter)
	}
	return 0, nil
}

func (s *stubServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, service)
	}
	return nil
}

func (s *stubServiceRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	return nil
}

func (s *stubServiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ServiceStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

type stubScheduleRepo struct {
	CreateFn         func(ctx context.Context, schedule *entity.Schedule) error
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	FindByWalkerFn   func(ctx context.Context, walkerID uuid.UUID) ([]*entity.Schedule, error)
	FindCoveringFn   func(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string) (*entity.Schedule, error)
	HasOverlappingFn func(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string, exclude uuid.UUID) (bool, error)
	UpdateFn         func(ctx context.Context, schedule *entity.Schedule) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (s *stubScheduleRepo) Create(ctx context.Context, schedule *entity.Schedule) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, schedule)
	}
	return nil
}

func (s *stubScheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubScheduleRepo) FindByWalker(ctx context.Context, walkerID uuid.UUID) ([]*entity.Schedule, error) {
	if s.FindByWalkerFn != nil {
		return s.FindByWalkerFn(ctx, walkerID)
	}
	return nil, nil
}

func (s *stubScheduleRepo) FindCovering(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string) (*entity.Schedule, error) {
	if s.FindCoveringFn != nil {
		return s.FindCoveringFn(ctx, walkerID, dayOfWeek, start, end)
	}
	return nil, nil
}

func (s *stubScheduleRepo) HasOverlapping(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string, exclude uuid.UUID) (bool, error) {
	if s.HasOverlappingFn != nil {
		return s.HasOverlappingFn(ctx, walkerID, dayOfWeek, start, end, exclude)
	}
	return false, nil
}

func (s *stubScheduleRepo) Update(ctx context.Context, schedule *entity.Schedule) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, schedule)
	}
	return nil
}

func (s *stubScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

type stubBookingRepo struct {
	CreateReservingFn       func(ctx context.Context, booking *entity.Booking) error
	FindByIDFn              func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindFn                  func(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error)
	CountFn                 func(ctx context.Context, filter repository.BookingFilter) (int64, error)
	HasOverlappingFn        func(ctx context.Context, walkerID uuid.UUID, date time.Time, start, end string) (bool, error)
	UpdateStatusReleasingFn func(ctx context.Context, bookingID uuid.UUID, status entity.ServiceStatus, serviceID uuid.UUID, release bool) error
	UpdateNotesFn           func(ctx context.Context, bookingID uuid.UUID, notes *string) error
	DeleteReleasingFn       func(ctx context.Context, bookingID, serviceID uuid.UUID) error
}

func (s *stubBookingRepo) CreateReserving(ctx context.Context, booking *entity.Booking) error {
	if s.CreateReservingFn != nil {
		return s.CreateReservingFn(ctx, booking)
	}
	return nil
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubBookingRepo) Find(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	if s.FindFn != nil {
		return s.FindFn(ctx, filter, limit, offset)
	}
	return nil, nil
}

func (s *stubBookingRepo) Count(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, filter)
	}
	return 0, nil
}

func (s *stubBookingRepo) HasOverlapping(ctx context.Context, walkerID uuid.UUID, date time.Time, start, end string) (bool, error) {
	if s.HasOverlappingFn != nil {
		return s.HasOverlappingFn(ctx, walkerID, date, start, end)
	}
	return false, nil
}

func (s *stubBookingRepo) UpdateStatusReleasing(ctx context.Context, bookingID uuid.UUID, status entity.ServiceStatus, serviceID uuid.UUID, release bool) error {
	if s.UpdateStatusReleasingFn != nil {
		return s.UpdateStatusReleasingFn(ctx, bookingID, status, serviceID, release)
	}
	return nil
}

func (s *stubBookingRepo) UpdateNotes(ctx context.Context, bookingID uuid.UUID, notes *string) error {
	if s.UpdateNotesFn != nil {
		return s.UpdateNotesFn(ctx, bookingID, notes)
	}
	return nil
}

func (s *stubBookingRepo) DeleteReleasing(ctx context.Context, bookingID, serviceID uuid.UUID) error {
	if s.DeleteReleasingFn != nil {
		return s.DeleteReleasingFn(ctx, bookingID, serviceID)
	}
	return nil
}

type stubProductRepo struct {
	CreateFn     func(ctx context.Context, product *entity.Product) error
	FindByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindFn       func(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountFn      func(ctx context.Context, filter repository.ProductFilter) (int64, error)
	UpdateFn     func(ctx context.Context, product *entity.Product) error
	DeactivateFn func(ctx context.Context, id uuid.UUID) error
}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	return nil
}

func (s *stubProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubProductRepo) Find(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	if s.FindFn != nil {
		return s.FindFn(ctx, filter, limit, offset)
	}
	return nil, nil
}

func (s *stubProductRepo) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, filter)
	}
	return 0, nil
}

func (s *stubProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	return nil
}

func (s *stubProductRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	return nil
}

type stubOrderRepo struct {
	CreateFn              func(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error
	FindByIDFn            func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindItemsFn           func(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	FindFn                func(ctx context.Context, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, error)
	CountFn               func(ctx context.Context, filter repository.OrderFilter) (int64, error)
	UpdateStatusFn        func(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error
	UpdatePaymentStatusFn func(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) error
	ExistsItemBySellerFn  func(ctx context.Context, orderID, sellerID uuid.UUID) (bool, error)
	ExistsItemByWalkerFn  func(ctx context.Context, orderID, walkerID uuid.UUID) (bool, error)
}

func (s *stubOrderRepo) Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, items)
	}
	return nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubOrderRepo) FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	if s.FindItemsFn != nil {
		return s.FindItemsFn(ctx, orderID)
	}
	return nil, nil
}

func (s *stubOrderRepo) Find(ctx context.Context, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, error) {
	if s.FindFn != nil {
		return s.FindFn(ctx, filter, limit, offset)
	}
	return nil, nil
}

func (s *stubOrderRepo) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, filter)
	}
	return 0, nil
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return nil
}

func (s *stubOrderRepo) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) error {
	if s.UpdatePaymentStatusFn != nil {
		return s.UpdatePaymentStatusFn(ctx, orderID, status)
	}
	return nil
}

func (s *stubOrderRepo) ExistsItemBySeller(ctx context.Context, orderID, sellerID uuid.UUID) (bool, error) {
	if s.ExistsItemBySellerFn != nil {
		return s.ExistsItemBySellerFn(ctx, orderID, sellerID)
	}
	return false, nil
}

func (s *stubOrderRepo) ExistsItemByWalker(ctx context.Context, orderID, walkerID uuid.UUID) (bool, error) {
	if s.ExistsItemByWalkerFn != nil {
		return s.ExistsItemByWalkerFn(ctx, orderID, walkerID)
	}
	return false, nil
}

type stubReviewRepo struct {
	CreateFn            func(ctx context.Context, review *entity.Review) error
	FindFn              func(ctx context.Context, filter repository.ReviewFilter, limit, offset int) ([]*entity.Review, error)
	CountFn             func(ctx context.Context, filter repository.ReviewFilter) (int64, error)
	SummaryForServiceFn func(ctx context.Context, serviceID uuid.UUID) (*repository.RatingSummary, error)
	SummaryForProductFn func(ctx context.Context, productID uuid.UUID) (*repository.RatingSummary, error)
}

func (s *stubReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, review)
	}
	return nil
}

func (s *stubReviewRepo) Find(ctx context.Context, filter repository.ReviewFilter, limit, offset int) ([]*entity.Review, error) {
	if s.FindFn != nil {
		return s.FindFn(ctx, filter, limit, offset)
	}
	return nil, nil
}

func (s *stubReviewRepo) Count(ctx context.Context, filter repository.ReviewFilter) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, filter)
	}
	return 0, nil
}

func (s *stubReviewRepo) SummaryForService(ctx context.Context, serviceID uuid.UUID) (*repository.RatingSummary, error) {
	if s.SummaryForServiceFn != nil {
		return s.SummaryForServiceFn(ctx, serviceID)
	}
	return &repository.RatingSummary{}, nil
}

func (s *stubReviewRepo) SummaryForProduct(ctx context.Context, productID uuid.UUID) (*repository.RatingSummary, error) {
	if s.SummaryForProductFn != nil {
		return s.SummaryForProductFn(ctx, productID)
	}
	return &repository.RatingSummary{}, nil
}
