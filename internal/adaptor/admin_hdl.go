package adaptor

import (
	"net/http"

	"petconnect/internal/usecase"
	"petconnect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

func (h *AdminHandler) ApproveSeller(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ApproveSeller(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Seller approved", nil)
}

func (h *AdminHandler) ApproveWalker(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ApproveWalker(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Walker approved", nil)
}
