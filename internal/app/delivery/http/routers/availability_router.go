package routers

import (
	"meeting-scheduler-service/internal/app/delivery/http/controllers"
	"meeting-scheduler-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.With(middlewares.RequireAPIKey).Post("/", availabilityController.GenerateAvailability)
	router.With(middlewares.RequireAPIKey).Post("/candidates", availabilityController.FilterCandidateTimeslots)
}
