package controllers

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	PatientUsecase contracts.PatientUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, patientUsecase contracts.PatientUsecase) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		PatientUsecase: patientUsecase,
	}
}

// CreateUser returns the existing user when the email is already registered.
func (ctrl *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "UserController.CreateUser")
	if !ok {
		return
	}

	request := new(requests.CreateUser)
	if err := decodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("UserController.CreateUser error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := ctrl.UserUsecase.CreateOrGetUser(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "UserController.CreateUser", requestID, err)
		return
	}

	ctrl.Log.Info("UserController.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, user)
}

func (ctrl *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "UserController.GetUser")
	if !ok {
		return
	}

	userID := chi.URLParam(r, constvars.URLParamUserID)
	if !validateURLParamID(ctrl.Log, w, "UserController.GetUser", requestID, constvars.URLParamUserID, userID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := ctrl.UserUsecase.GetUser(ctx, userID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "UserController.GetUser", requestID, err)
		return
	}

	ctrl.Log.Info("UserController.GetUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUserSuccessMessage, user)
}

// GetUserPatient reports found=false when the user has not registered as a
// patient yet.
func (ctrl *UserController) GetUserPatient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "UserController.GetUserPatient")
	if !ok {
		return
	}

	userID := chi.URLParam(r, constvars.URLParamUserID)
	if !validateURLParamID(ctrl.Log, w, "UserController.GetUserPatient", requestID, constvars.URLParamUserID, userID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	patient, err := ctrl.PatientUsecase.GetPatientByUserID(ctx, userID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "UserController.GetUserPatient", requestID, err)
		return
	}

	ctrl.Log.Info("UserController.GetUserPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Bool("registered", patient != nil),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, &responses.PatientLookup{
		Found:   patient != nil,
		Patient: patient,
	})
}
