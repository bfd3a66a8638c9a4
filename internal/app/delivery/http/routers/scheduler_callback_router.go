package routers

import (
	"meeting-scheduler-service/internal/app/delivery/http/controllers"
	"meeting-scheduler-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// The callback route authenticates with X-Callback-Token inside the usecase,
// not with the API key.
func attachSchedulerCallbackRoutes(router chi.Router, _ *middlewares.Middlewares, ctrl *controllers.SchedulerCallbackController) {
	// POST /scheduler/callback
	router.Post("/callback", ctrl.HandleCallback)
}
