package routers

import (
	"fmt"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/delivery/http/controllers"
	"meeting-scheduler-service/internal/app/delivery/http/middlewares"
	"meeting-scheduler-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	availabilityController *controllers.AvailabilityController,
	schedulingController *controllers.SchedulingController,
	schedulerCallbackController *controllers.SchedulerCallbackController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderContentType,
			constvars.HeaderXRequestID,
			constvars.HeaderXAPIKey,
			constvars.HeaderXCallbackToken,
		},
		ExposedHeaders: []string{constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	// The solver gets its own budget so a burst of callbacks cannot starve API callers.
	normalLimiter, callbackLimiter := middlewares.CreateRateLimiters()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(normalLimiter)

				r.Route("/availability", func(r chi.Router) {
					attachAvailabilityRoutes(r, middlewares, availabilityController)
				})

				r.Route("/scheduling", func(r chi.Router) {
					attachSchedulingRoutes(r, middlewares, schedulingController)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(callbackLimiter)

				r.Route("/scheduler", func(r chi.Router) {
					attachSchedulerCallbackRoutes(r, middlewares, schedulerCallbackController)
				})
			})
		})
	})
}
