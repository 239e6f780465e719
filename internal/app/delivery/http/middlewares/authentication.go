package middlewares

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate admits only requests carrying a live admin session token.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.RequestIDFromContext(r.Context())

		session, err := m.AuthUsecase.ParseSession(r.Context(), utils.BearerToken(r))
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
