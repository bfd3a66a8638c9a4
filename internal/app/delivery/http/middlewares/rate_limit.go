package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters creates the per-IP limiters for the public API and for the
// solver callback route.
func (m *Middlewares) CreateRateLimiters() (normalLimiter, callbackLimiter func(next http.Handler) http.Handler) {
	normalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)

	callbackMax := m.InternalConfig.App.CallbackMaxRequests
	if callbackMax <= 0 {
		callbackMax = m.InternalConfig.App.MaxRequests
	}
	callbackLimiter = httprate.LimitByIP(callbackMax, time.Second)
	return normalLimiter, callbackLimiter
}
