package patients

import (
	"bytes"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	ObjectStore       contracts.ObjectStore
	Log               *zap.Logger
	MaxDocumentSize   int64
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	objectStore contracts.ObjectStore,
	maxDocumentSize int64,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		ObjectStore:       objectStore,
		Log:               logger,
		MaxDocumentSize:   maxDocumentSize,
	}
}

// RegisterPatient validates everything before the first write. When the
// patient record cannot be stored the uploaded document is removed again.
func (uc *patientUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient, document *models.IdentificationDocument) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	request.Normalize()
	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("patientUsecase.RegisterPatient error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	err = utils.ValidateIdentificationDocument(document, uc.MaxDocumentSize)
	if err != nil {
		uc.Log.Error("patientUsecase.RegisterPatient error validating identification document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	birthDate, err := utils.ParseDate(request.BirthDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := newPatientFromRequest(request)
	patient.BirthDate = birthDate.UTC()

	var storedDocument *models.StoredObject
	if document != nil {
		storedDocument, err = uc.ObjectStore.PutObject(ctx, &contracts.PutObjectInput{
			FileName:    document.FileName,
			ContentType: document.ContentType,
			Size:        document.Size,
			Body:        bytes.NewReader(document.Content),
		})
		if err != nil {
			uc.Log.Error("patientUsecase.RegisterPatient error calling ObjectStore.PutObject",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		patient.IdentificationDocumentID = &storedDocument.ID
		patient.IdentificationDocumentURL = &storedDocument.URL
	}

	createdPatient, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.RegisterPatient error calling PatientRepository.CreatePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if storedDocument != nil {
			uc.removeOrphanedDocument(ctx, storedDocument.ID)
		}
		return nil, err
	}

	uc.Log.Info("patientUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, createdPatient.ID),
	)
	return createdPatient, nil
}

// removeOrphanedDocument runs on a context detached from the request so an
// expired deadline does not also skip the cleanup.
func (uc *patientUsecase) removeOrphanedDocument(ctx context.Context, objectID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.ObjectStore.DeleteObject(utils.DetachedContext(ctx), objectID)
	if err != nil {
		uc.Log.Error("patientUsecase.removeOrphanedDocument error calling ObjectStore.DeleteObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectIDKey, objectID),
			zap.Error(err),
		)
		return
	}

	uc.Log.Info("patientUsecase.removeOrphanedDocument succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectIDKey, objectID),
	)
}

// GetPatientByUserID returns nil when the user has not registered a patient.
func (uc *patientUsecase) GetPatientByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatientByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	patient, err := uc.PatientRepository.FindByUserID(ctx, userID)
	if err != nil {
		uc.Log.Error("patientUsecase.GetPatientByUserID error calling PatientRepository.FindByUserID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.GetPatientByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, patient != nil),
	)
	return patient, nil
}

func newPatientFromRequest(request *requests.RegisterPatient) *models.Patient {
	return &models.Patient{
		UserID:                 request.UserID,
		Name:                   request.Name,
		Email:                  request.Email,
		Phone:                  request.Phone,
		Gender:                 request.Gender,
		Address:                request.Address,
		Occupation:             request.Occupation,
		EmergencyContactName:   request.EmergencyContactName,
		EmergencyContactNumber: request.EmergencyContactNumber,
		PrimaryPhysician:       request.PrimaryPhysician,
		InsuranceProvider:      request.InsuranceProvider,
		InsurancePolicyNumber:  request.InsurancePolicyNumber,
		Allergies:              request.Allergies,
		CurrentMedication:      request.CurrentMedication,
		FamilyMedicalHistory:   request.FamilyMedicalHistory,
		PastMedicalHistory:     request.PastMedicalHistory,
		IdentificationType:     request.IdentificationType,
		IdentificationNumber:   request.IdentificationNumber,
		TreatmentConsent:       request.TreatmentConsent,
		DisclosureConsent:      request.DisclosureConsent,
		PrivacyConsent:         request.PrivacyConsent,
	}
}
