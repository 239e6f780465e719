package contracts

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	LoginAdmin(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error)
	LogoutAdmin(ctx context.Context, sessionID string) error
	// ParseSession verifies the bearer token and loads the session it names.
	ParseSession(ctx context.Context, token string) (*models.AdminSession, error)
}
