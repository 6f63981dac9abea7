package usecase

import (
	"petconnect/internal/data/repository"
	"petconnect/pkg/utils"

	"go.uber.org/zap"
)

// Usecase bundles every service for the wiring layer.
type Usecase struct {
	Auth    AuthService
	Walker  WalkerService
	Booking BookingService
	Order   OrderService
	Product ProductService
	Review  ReviewService
	Admin   AdminService
}

func NewUsecase(repo *repository.Repository, jwt utils.JWTConfig, log *zap.Logger) *Usecase {
	return &Usecase{
		Auth:    NewAuthService(repo, jwt, log),
		Walker:  NewWalkerService(repo, log),
		Booking: NewBookingService(repo, log),
		Order:   NewOrderService(repo, log),
		Product: NewProductService(repo, log),
		Review:  NewReviewService(repo, log),
		Admin:   NewAdminService(repo, log),
	}
}
