package wire

import (
	"petconnect/internal/data/entity"
	"petconnect/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func (wr *Wiring) authRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", wr.handler.Auth.Register)
		r.Post("/login", wr.handler.Auth.Login)
		r.Post("/refresh", wr.handler.Auth.Refresh)
		r.Post("/logout", wr.handler.Auth.Logout)
	})
}

func (wr *Wiring) walkerRoutes(r chi.Router) {
	r.Route("/walkers", func(r chi.Router) {
		r.Get("/{id}", wr.handler.Walker.GetProfile)
		r.Get("/{id}/schedules", wr.handler.Walker.ListSchedules)

		wr.authenticated(r, func(r chi.Router) {
			r.With(middleware.RequireRole(wr.log, entity.RoleWalker)).
				Put("/me/whatsapp", wr.handler.Walker.UpdateWhatsApp)
		})
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", wr.handler.Walker.ListServices)
		r.Get("/{id}", wr.handler.Walker.GetService)

		wr.authenticated(r, func(r chi.Router) {
			walker := middleware.RequireRole(wr.log, entity.RoleWalker, entity.RoleAdmin)
			r.With(walker).Post("/", wr.handler.Walker.CreateService)
			r.With(walker).Put("/{id}", wr.handler.Walker.UpdateService)
			r.With(walker).Delete("/{id}", wr.handler.Walker.DeleteService)
		})
	})

	r.Route("/schedules", func(r chi.Router) {
		wr.authenticated(r, func(r chi.Router) {
			walker := middleware.RequireRole(wr.log, entity.RoleWalker, entity.RoleAdmin)
			r.With(walker).Post("/", wr.handler.Walker.CreateSchedule)
			r.With(walker).Put("/{id}", wr.handler.Walker.UpdateSchedule)
			r.With(walker).Delete("/{id}", wr.handler.Walker.DeleteSchedule)
		})
	})
}

func (wr *Wiring) bookingRoutes(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/availability", wr.handler.Booking.CheckAvailability)

		wr.authenticated(r, func(r chi.Router) {
			r.With(middleware.RequireRole(wr.log, entity.RoleCustomer)).
				Post("/", wr.handler.Booking.Create)
			r.Get("/", wr.handler.Booking.List)
			r.Get("/{id}", wr.handler.Booking.GetByID)
			r.Patch("/{id}/status", wr.handler.Booking.UpdateStatus)
			r.Patch("/{id}/notes", wr.handler.Booking.UpdateNotes)
			r.With(middleware.RequireRole(wr.log, entity.RoleAdmin)).
				Delete("/{id}", wr.handler.Booking.Delete)
		})
	})
}

func (wr *Wiring) orderRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		wr.authenticated(r, func(r chi.Router) {
			r.With(middleware.RequireRole(wr.log, entity.RoleCustomer)).
				Post("/", wr.handler.Order.Create)
			r.Get("/", wr.handler.Order.List)
			r.Get("/{id}", wr.handler.Order.GetByID)
			r.Patch("/{id}/status", wr.handler.Order.UpdateStatus)
			r.With(middleware.RequireRole(wr.log, entity.RoleAdmin)).
				Patch("/{id}/payment", wr.handler.Order.UpdatePaymentStatus)
		})
	})
}

func (wr *Wiring) productRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", wr.handler.Product.List)
		r.Get("/{id}", wr.handler.Product.GetByID)

		wr.authenticated(r, func(r chi.Router) {
			seller := middleware.RequireRole(wr.log, entity.RoleSeller, entity.RoleAdmin)
			r.With(seller).Post("/", wr.handler.Product.Create)
			r.With(seller).Put("/{id}", wr.handler.Product.Update)
			r.With(seller).Delete("/{id}", wr.handler.Product.Delete)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", wr.handler.Product.ListCategories)

		wr.authenticated(r, func(r chi.Router) {
			r.With(middleware.RequireRole(wr.log, entity.RoleAdmin)).
				Post("/", wr.handler.Product.CreateCategory)
		})
	})
}

func (wr *Wiring) reviewRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", wr.handler.Review.List)

		wr.authenticated(r, func(r chi.Router) {
			r.With(middleware.RequireRole(wr.log, entity.RoleCustomer)).
				Post("/", wr.handler.Review.Create)
		})
	})
}

func (wr *Wiring) adminRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		wr.authenticated(r, func(r chi.Router) {
			admin := middleware.RequireRole(wr.log, entity.RoleAdmin)
			r.With(admin).Patch("/sellers/{id}/approve", wr.handler.Admin.ApproveSeller)
			r.With(admin).Patch("/walkers/{id}/approve", wr.handler.Admin.ApproveWalker)
		})
	})
}
