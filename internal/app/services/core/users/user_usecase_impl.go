package users

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const defaultReconcileMaxTries = 5

var errUserNotVisible = errors.New("conflicting user is not visible yet")

type userUsecase struct {
	UserRepository    contracts.UserRepository
	Log               *zap.Logger
	ReconcileMaxTries uint
	newBackOff        func() backoff.BackOff
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:    userRepository,
		Log:               logger,
		ReconcileMaxTries: defaultReconcileMaxTries,
		newBackOff: func() backoff.BackOff {
			exponential := backoff.NewExponentialBackOff()
			exponential.InitialInterval = 50 * time.Millisecond
			exponential.MaxInterval = time.Second
			return exponential
		},
	}
}

// CreateOrGetUser is idempotent per email: a duplicate insert resolves to the
// user that already owns the email.
func (uc *userUsecase) CreateOrGetUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateOrGetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.Normalize()
	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("userUsecase.CreateOrGetUser error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.CreateUser(ctx, &models.User{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
	})
	if err == nil {
		uc.Log.Info("userUsecase.CreateOrGetUser succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		return user, nil
	}

	if !exceptions.IsConflict(err) {
		uc.Log.Error("userUsecase.CreateOrGetUser error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.CreateOrGetUser email already registered, looking up existing user",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)
	return uc.findConflictingUser(ctx, request.Email)
}

// findConflictingUser retries the email lookup because the conflicting insert
// may not be visible to reads yet.
func (uc *userUsecase) findConflictingUser(ctx context.Context, email string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	attempt := 0
	operation := func() (*models.User, error) {
		attempt++
		user, err := uc.UserRepository.FindByEmail(ctx, email)
		if err != nil {
			if exceptions.IsTransient(err) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if user == nil {
			return nil, errUserNotVisible
		}
		return user, nil
	}

	notify := func(err error, wait time.Duration) {
		uc.Log.Warn("userUsecase.findConflictingUser retrying lookup",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingRetryAttemptKey, attempt),
			zap.Duration(constvars.LoggingDurationKey, wait),
			zap.Error(err),
		)
	}

	user, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(uc.newBackOff()),
		backoff.WithMaxTries(uc.ReconcileMaxTries),
		backoff.WithNotify(notify),
	)
	if err != nil {
		uc.Log.Error("userUsecase.findConflictingUser error resolving conflicting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingRetryAttemptKey, attempt),
			zap.Error(err),
		)
		if errors.Is(err, errUserNotVisible) {
			return nil, exceptions.ErrUserNotFoundAfterConflict(err)
		}
		return nil, err
	}

	uc.Log.Info("userUsecase.findConflictingUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (uc *userUsecase) GetUser(ctx context.Context, userID string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		uc.Log.Error("userUsecase.GetUser error calling UserRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.GetUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}
