package routers

import (
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	appointmentController *controllers.AppointmentController,
) {
	router.With(loginLimiter.Limit).Post("/login", authController.LoginAdmin)

	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Post("/logout", authController.LogoutAdmin)
		r.Get("/appointments", appointmentController.ListRecentAppointments)
		r.Put("/appointments/{appointmentId}/schedule", appointmentController.ScheduleAppointment)
		r.Put("/appointments/{appointmentId}/cancel", appointmentController.CancelAppointment)
	})
}
