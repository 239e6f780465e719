package controllers

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "AuthController.LoginAdmin")
	if !ok {
		return
	}

	request := new(requests.AdminLogin)
	if err := decodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("AuthController.LoginAdmin error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	login, err := ctrl.AuthUsecase.LoginAdmin(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AuthController.LoginAdmin", requestID, err)
		return
	}

	ctrl.Log.Info("AuthController.LoginAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, login)
}

func (ctrl *AuthController) LogoutAdmin(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "AuthController.LogoutAdmin")
	if !ok {
		return
	}

	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID == "" {
		ctrl.Log.Error("AuthController.LogoutAdmin session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.AuthUsecase.LogoutAdmin(ctx, sessionID); err != nil {
		writeUsecaseError(ctrl.Log, w, "AuthController.LogoutAdmin", requestID, err)
		return
	}

	ctrl.Log.Info("AuthController.LogoutAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
