package auth

import (
	"carepulse-service/internal/app/services/shared/redis"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthUsecase(t *testing.T) *authUsecase {
	t.Helper()
	hash, err := utils.HashPasskey("123456")
	require.NoError(t, err)
	return NewAuthUsecase(redis.NewMemoryRepository(), hash, "secret", time.Hour, zap.NewNop()).(*authUsecase)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "unexpected error %v", err)
	return customErr.StatusCode
}

func TestLoginAdmin_IssuesTokenForSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestAuthUsecase(t)

	login, err := uc.LoginAdmin(ctx, &requests.AdminLogin{Passkey: "123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	session, err := uc.ParseSession(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, constvars.RoleAdmin, session.Role)

	require.NoError(t, uc.LogoutAdmin(ctx, session.SessionID))
	_, err = uc.ParseSession(ctx, login.Token)
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
}

func TestLoginAdmin_WrongPasskey(t *testing.T) {
	uc := newTestAuthUsecase(t)

	_, err := uc.LoginAdmin(context.Background(), &requests.AdminLogin{Passkey: "654321"})
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
}

func TestLoginAdmin_DisabledWithoutHash(t *testing.T) {
	uc := newTestAuthUsecase(t)
	uc.PasskeyHash = ""

	_, err := uc.LoginAdmin(context.Background(), &requests.AdminLogin{Passkey: "123456"})
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
}

func TestParseSession_Rejections(t *testing.T) {
	ctx := context.Background()
	uc := newTestAuthUsecase(t)

	_, err := uc.ParseSession(ctx, "")
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))

	_, err = uc.ParseSession(ctx, "not-a-jwt")
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))

	forged, err := utils.GenerateSessionJWT("unknown-session", "secret", time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = uc.ParseSession(ctx, forged)
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
}

func TestParseSession_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestAuthUsecase(t)

	login, err := uc.LoginAdmin(ctx, &requests.AdminLogin{Passkey: "123456"})
	require.NoError(t, err)

	uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = uc.ParseSession(ctx, login.Token)
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
}
