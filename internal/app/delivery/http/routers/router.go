package routers

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"
	"carepulse-service/internal/pkg/constvars"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	mw *middlewares.Middlewares,
	userController *controllers.UserController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	doctorController *controllers.DoctorController,
	authController *controllers.AuthController,
	validationController *controllers.ValidationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)
	router.Use(mw.BodyLimit)

	loginLimiter := middlewares.NewRateLimiter(
		logger,
		internalConfig.Admin.LoginRateLimitBurst,
		time.Minute/time.Duration(max(internalConfig.Admin.LoginRateLimitPerMinute, 1)),
		time.Duration(internalConfig.Admin.LoginBlockDurationInMinutes)*time.Minute,
	)

	router.Route(routePrefix(internalConfig.App.EndpointPrefix), func(r chi.Router) {
		r.Route(routePrefix(internalConfig.App.Version), func(r chi.Router) {
			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, userController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, appointmentController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, doctorController)
			})

			r.Route("/validations", func(r chi.Router) {
				attachValidationRoutes(r, validationController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, mw, loginLimiter, authController, appointmentController)
			})
		})
	})
}

func routePrefix(segment string) string {
	return "/" + strings.Trim(segment, "/")
}
