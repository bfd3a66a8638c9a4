package routers

import (
	"meeting-scheduler-service/internal/app/delivery/http/controllers"
	"meeting-scheduler-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSchedulingRoutes(router chi.Router, middlewares *middlewares.Middlewares, schedulingController *controllers.SchedulingController) {
	router.With(middlewares.RequireAPIKey).Post("/jobs", schedulingController.SubmitSchedulingJob)
}
