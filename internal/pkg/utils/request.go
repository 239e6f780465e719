package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// RequestIDFromContext returns an empty string when the request id middleware
// did not run.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// DetachedContext keeps the request id of parent but not its cancellation.
func DetachedContext(parent context.Context) context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, RequestIDFromContext(parent))
}

func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
}

func ValidateUrlParamID(param string) error {
	_, err := uuid.Parse(param)
	return err
}
