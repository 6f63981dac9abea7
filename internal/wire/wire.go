package wire

import (
	"net/http"

	"petconnect/internal/adaptor"
	"petconnect/internal/data/repository"
	"petconnect/internal/usecase"
	"petconnect/pkg/database"
	"petconnect/pkg/middleware"
	"petconnect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Wiring assembles repositories, services and handlers and builds the
// router. Dependency injection is done by hand; the graph is small
// enough that generators would only obscure it.
type Wiring struct {
	Router  chi.Router
	handler *adaptor.Handler
	config  *utils.Config
	log     *zap.Logger
}

func New(db database.PgxIface, config *utils.Config, log *zap.Logger) *Wiring {
	repo := repository.NewRepository(db, log)
	uc := usecase.NewUsecase(repo, config.JWT, log)
	handler := adaptor.NewHandler(uc, log)

	w := &Wiring{
		handler: handler,
		config:  config,
		log:     log,
	}
	w.Router = w.setupRouter(db)

	return w
}

func (wr *Wiring) setupRouter(db database.PgxIface) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recover(wr.log))
	r.Use(middleware.Logger(wr.log))
	r.Use(middleware.CORS())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			utils.ResponseInternalError(w, "database unreachable")
			return
		}
		utils.ResponseSuccess(w, "ok", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		wr.authRoutes(r)
		wr.walkerRoutes(r)
		wr.bookingRoutes(r)
		wr.orderRoutes(r)
		wr.productRoutes(r)
		wr.reviewRoutes(r)
		wr.adminRoutes(r)
	})

	return r
}

// authenticated wraps a route group with the JWT middleware.
func (wr *Wiring) authenticated(r chi.Router, fn func(chi.Router)) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(wr.config.JWT.Secret, wr.log))
		fn(r)
	})
}
