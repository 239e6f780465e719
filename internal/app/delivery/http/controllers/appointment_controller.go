package controllers

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	DoctorUsecase      contracts.DoctorUsecase
	Location           *time.Location
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, doctorUsecase contracts.DoctorUsecase, location *time.Location) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		DoctorUsecase:      doctorUsecase,
		Location:           location,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "AppointmentController.CreateAppointment")
	if !ok {
		return
	}

	request := new(requests.CreateAppointment)
	if err := decodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.CreateAppointment", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) GetAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "AppointmentController.GetAppointment")
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if !validateURLParamID(ctrl.Log, w, "AppointmentController.GetAppointment", requestID, constvars.URLParamAppointmentID, appointmentID) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.GetAppointment(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.GetAppointment", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.GetAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	detail := utils.MapAppointmentToDetail(appointment, ctrl.DoctorUsecase.FindByName, ctrl.Location)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, detail)
}

// ListRecentAppointments serves the admin dashboard.
func (ctrl *AppointmentController) ListRecentAppointments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "AppointmentController.ListRecentAppointments")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	recent, err := ctrl.AppointmentUsecase.ListRecentAppointments(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.ListRecentAppointments", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.ListRecentAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(recent.Documents)),
	)
	dashboard := utils.MapRecentAppointmentsToDashboard(recent, ctrl.DoctorUsecase.FindByName, ctrl.Location)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAppointmentsSuccessMessage, dashboard)
}

func (ctrl *AppointmentController) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "AppointmentController.ScheduleAppointment")
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if !validateURLParamID(ctrl.Log, w, "AppointmentController.ScheduleAppointment", requestID, constvars.URLParamAppointmentID, appointmentID) {
		return
	}

	request := new(requests.ScheduleAppointment)
	if err := decodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("AppointmentController.ScheduleAppointment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.ScheduleAppointment(ctx, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.ScheduleAppointment", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.ScheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "AppointmentController.CancelAppointment")
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if !validateURLParamID(ctrl.Log, w, "AppointmentController.CancelAppointment", requestID, constvars.URLParamAppointmentID, appointmentID) {
		return
	}

	request := new(requests.CancelAppointment)
	if err := decodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("AppointmentController.CancelAppointment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.CancelAppointment", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccessMessage, appointment)
}
