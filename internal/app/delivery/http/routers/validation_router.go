package routers

import (
	"carepulse-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachValidationRoutes(router chi.Router, validationController *controllers.ValidationController) {
	router.Post("/{kind}", validationController.ValidatePayload)
}
