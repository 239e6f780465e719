package auth

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	RedisRepository contracts.RedisRepository
	PasskeyHash     string
	JWTSecret       string
	SessionTTL      time.Duration
	Log             *zap.Logger
	now             func() time.Time
}

func NewAuthUsecase(
	redisRepository contracts.RedisRepository,
	passkeyHash string,
	jwtSecret string,
	sessionTTL time.Duration,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		RedisRepository: redisRepository,
		PasskeyHash:     passkeyHash,
		JWTSecret:       jwtSecret,
		SessionTTL:      sessionTTL,
		Log:             logger,
		now:             time.Now,
	}
}

func (uc *authUsecase) LoginAdmin(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if uc.PasskeyHash == "" || !utils.CheckPasskeyHash(request.Passkey, uc.PasskeyHash) {
		uc.Log.Warn("authUsecase.LoginAdmin rejected passkey",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidPasskey(errors.New("passkey does not match"))
	}

	now := uc.now().UTC()
	session := &models.AdminSession{
		SessionID: uuid.NewString(),
		Role:      constvars.RoleAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.SessionTTL),
	}

	sessionKey := fmt.Sprintf(constvars.RedisAdminSessionKeyFormat, session.SessionID)
	err = uc.RedisRepository.Set(ctx, sessionKey, session, uc.SessionTTL)
	if err != nil {
		uc.Log.Error("authUsecase.LoginAdmin error calling RedisRepository.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.JWTSecret, session.ExpiresAt)
	if err != nil {
		uc.Log.Error("authUsecase.LoginAdmin error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.AdminLogin{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (uc *authUsecase) LogoutAdmin(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	err := uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisAdminSessionKeyFormat, sessionID))
	if err != nil {
		uc.Log.Error("authUsecase.LogoutAdmin error calling RedisRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.LogoutAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) ParseSession(ctx context.Context, token string) (*models.AdminSession, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseSessionJWT(token, uc.JWTSecret)
	if err != nil {
		return nil, err
	}

	sessionData, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisAdminSessionKeyFormat, sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(fmt.Errorf("session %s not found", sessionID))
	}

	session := new(models.AdminSession)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if session.Role != constvars.RoleAdmin || session.IsExpired(uc.now()) {
		return nil, exceptions.ErrInvalidSession(fmt.Errorf("session %s is not an active admin session", sessionID))
	}
	return session, nil
}
