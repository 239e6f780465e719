package routers

import (
	"carepulse-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *controllers.UserController) {
	router.Post("/", userController.CreateUser)
	router.Get("/{userId}", userController.GetUser)
	router.Get("/{userId}/patient", userController.GetUserPatient)
}
