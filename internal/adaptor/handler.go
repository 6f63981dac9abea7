package adaptor

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"petconnect/internal/data/entity"
	"petconnect/internal/data/repository"
	"petconnect/internal/dto/request"
	"petconnect/internal/usecase"
	"petconnect/pkg/utils"

	"go.uber.org/zap"
)

// Handler bundles every HTTP handler for the wiring layer.
type Handler struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Order   *OrderHandler
	Walker  *WalkerHandler
	Product *ProductHandler
	Review  *ReviewHandler
	Admin   *AdminHandler
}

func NewHandler(uc *usecase.Usecase, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(uc.Auth, log),
		Booking: NewBookingHandler(uc.Booking, log),
		Order:   NewOrderHandler(uc.Order, log),
		Walker:  NewWalkerHandler(uc.Walker, log),
		Product: NewProductHandler(uc.Product, log),
		Review:  NewReviewHandler(uc.Review, log),
		Admin:   NewAdminHandler(uc.Admin, log),
	}
}

// actorFromContext rebuilds the authenticated actor the JWT middleware
// stored on the request context.
func actorFromContext(r *http.Request) (entity.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return entity.Actor{}, false
	}
	roleStr, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return entity.Actor{}, false
	}
	role, err := entity.ParseRole(roleStr)
	if err != nil {
		return entity.Actor{}, false
	}
	return entity.Actor{UserID: userID, Role: role}, true
}

func parsePagination(r *http.Request) request.Pagination {
	return request.Pagination{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("perPage"), 10),
	}
}

func parsePrice(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// handleServiceError translates usecase errors to HTTP responses by
// message, mirroring how the services phrase their failures.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	if errors.Is(err, repository.ErrSlotTaken) || errors.Is(err, repository.ErrInsufficientStock) {
		utils.ResponseConflict(w, err.Error())
		return
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		utils.ResponseNotFound(w, msg)
	case strings.Contains(msg, "access denied"):
		utils.ResponseForbidden(w, msg)
	case strings.Contains(msg, "invalid credentials"),
		strings.Contains(msg, "invalid refresh token"),
		strings.Contains(msg, "account is disabled"):
		utils.ResponseUnauthorized(w, msg)
	case strings.Contains(msg, "already"),
		strings.Contains(msg, "overlaps"),
		strings.Contains(msg, "cannot transition"),
		strings.Contains(msg, "active booking"):
		utils.ResponseConflict(w, msg)
	case strings.Contains(msg, "invalid"),
		strings.Contains(msg, "must"),
		strings.Contains(msg, "required"),
		strings.Contains(msg, "unknown role"),
		strings.Contains(msg, "outside"),
		strings.Contains(msg, "not available"),
		strings.Contains(msg, "not approved"),
		strings.Contains(msg, "cannot self-register"):
		utils.ResponseBadRequest(w, msg, nil)
	default:
		log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
