package middlewares

import (
	"context"
	"crypto/subtle"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

const (
	HeaderAPIKey      = constvars.HeaderXAPIKey
	ContextAPIKeyAuth = constvars.CONTEXT_API_KEY_AUTH
)

// RequireAPIKey guards the internal availability and scheduling routes. The key
// must match APP_SUPERADMIN_API_KEY exactly; an unset key rejects every call.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(HeaderAPIKey)
		expected := m.InternalConfig.App.SuperadminAPIKey

		if apiKey == "" || expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			utils.LogRejectedCaller(m.Log, constvars.RejectionAPIKey, utils.GetRequestID(r.Context()), utils.SeverityLow,
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Bool("key_present", apiKey != ""),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), ContextAPIKeyAuth, true)

		m.Log.Debug("API Key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
