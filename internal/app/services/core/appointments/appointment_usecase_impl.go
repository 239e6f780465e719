package appointments

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	LockService           contracts.LockerService
	NotificationService   contracts.NotificationService
	LockExpiration        time.Duration
	Location              *time.Location
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	lockService contracts.LockerService,
	notificationService contracts.NotificationService,
	lockExpiration time.Duration,
	location *time.Location,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	if location == nil {
		location = time.UTC
	}
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		LockService:           lockService,
		NotificationService:   notificationService,
		LockExpiration:        lockExpiration,
		Location:              location,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	schedule, err := utils.ParseSchedule(request.Schedule)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error calling PatientRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient.UserID != request.UserID {
		uc.Log.Warn("appointmentUsecase.CreateAppointment patient belongs to another user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
		)
		return nil, exceptions.ErrPatientNotOwnedByUser(patient.ID, patient.UserID, request.UserID)
	}

	appointment, err := uc.AppointmentRepository.CreateAppointment(ctx, &models.Appointment{
		UserID:           request.UserID,
		PatientID:        request.PatientID,
		PrimaryPhysician: request.PrimaryPhysician,
		Schedule:         schedule,
		Status:           models.AppointmentStatusPending,
		Reason:           request.Reason,
		Note:             request.Note,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error calling AppointmentRepository.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetAppointment error calling AppointmentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.GetAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

// UpdateAppointment holds the per-appointment lock across read, transition
// check and write. A held lock is reported as a busy conflict, not waited on.
func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, patch models.AppointmentPatch) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusToKey, string(patch.Status)),
	)

	lockKey := fmt.Sprintf(constvars.RedisAppointmentLockKeyFormat, appointmentID)
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, uc.LockExpiration)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error calling LockService.TryLock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAppointmentLocked(fmt.Errorf("lock %s is held", lockKey), appointmentID)
	}
	defer func() {
		unlockErr := uc.LockService.Unlock(utils.DetachedContext(ctx), lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Error("appointmentUsecase.UpdateAppointment error calling LockService.Unlock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error calling AppointmentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	previousStatus := appointment.Status
	err = appointment.Apply(patch)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment rejected status transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStatusFromKey, string(previousStatus)),
			zap.String(constvars.LoggingStatusToKey, string(patch.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	updated, err := uc.AppointmentRepository.UpdateAppointment(ctx, appointmentID, appointment.UpdateFields(patch))
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error calling AppointmentRepository.UpdateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, updated.ID),
		zap.String(constvars.LoggingStatusFromKey, string(previousStatus)),
		zap.String(constvars.LoggingStatusToKey, string(updated.Status)),
	)
	return updated, nil
}

func (uc *appointmentUsecase) ScheduleAppointment(ctx context.Context, appointmentID string, request *requests.ScheduleAppointment) (*models.Appointment, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	schedule, err := utils.ParseSchedule(request.Schedule)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patch := models.AppointmentPatch{
		PrimaryPhysician: &request.PrimaryPhysician,
		Schedule:         &schedule,
		Status:           models.AppointmentStatusScheduled,
	}
	if request.CancellationReason != "" {
		patch.CancellationReason = &request.CancellationReason
	}

	appointment, err := uc.UpdateAppointment(ctx, appointmentID, patch)
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf(constvars.NotificationScheduleContentFormat,
		constvars.NotificationGreeting,
		utils.FormatDateTime(appointment.Schedule, uc.Location),
		appointment.PrimaryPhysician,
	)
	uc.notifyPatient(ctx, appointment, constvars.NotificationTypeSchedule, content)
	return appointment, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*models.Appointment, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	schedule, err := utils.ParseSchedule(request.Schedule)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patch := models.AppointmentPatch{
		PrimaryPhysician:   &request.PrimaryPhysician,
		Schedule:           &schedule,
		Status:             models.AppointmentStatusCancelled,
		CancellationReason: &request.CancellationReason,
	}

	appointment, err := uc.UpdateAppointment(ctx, appointmentID, patch)
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf(constvars.NotificationCancelContentFormat,
		constvars.NotificationGreeting,
		utils.FormatDateTime(appointment.Schedule, uc.Location),
		appointment.CancellationReason,
	)
	uc.notifyPatient(ctx, appointment, constvars.NotificationTypeCancel, content)
	return appointment, nil
}

// notifyPatient never fails the caller; the status change is already stored.
func (uc *appointmentUsecase) notifyPatient(ctx context.Context, appointment *models.Appointment, notificationType, content string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if uc.NotificationService == nil {
		return
	}

	err := uc.NotificationService.PublishAppointmentNotification(ctx, &requests.AppointmentNotification{
		UserID:        appointment.UserID,
		AppointmentID: appointment.ID,
		Type:          notificationType,
		Content:       content,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.notifyPatient error calling NotificationService.PublishAppointmentNotification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.String(constvars.LoggingNotificationTypeKey, notificationType),
			zap.Error(err),
		)
	}
}

// ListRecentAppointments derives the counts from the same scan it returns.
func (uc *appointmentUsecase) ListRecentAppointments(ctx context.Context) (*responses.RecentAppointments, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListRecentAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAllByRecency(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListRecentAppointments error calling AppointmentRepository.FindAllByRecency",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patientIDs := make([]string, 0, len(appointments))
	seen := make(map[string]bool, len(appointments))
	for _, appointment := range appointments {
		if !seen[appointment.PatientID] {
			seen[appointment.PatientID] = true
			patientIDs = append(patientIDs, appointment.PatientID)
		}
	}

	patients, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListRecentAppointments error calling PatientRepository.FindByIDs",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	counts := models.CountByStatus(appointments)
	result := &responses.RecentAppointments{
		ScheduledCount: counts.Scheduled,
		PendingCount:   counts.Pending,
		CancelledCount: counts.Cancelled,
		Documents:      make([]responses.AppointmentDocument, 0, len(appointments)),
	}
	for _, appointment := range appointments {
		document := responses.AppointmentDocument{Appointment: appointment}
		if patient, ok := patients[appointment.PatientID]; ok {
			document.Patient = &patient
		}
		result.Documents = append(result.Documents, document)
	}

	uc.Log.Info("appointmentUsecase.ListRecentAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(result.Documents)),
	)
	return result, nil
}
