package controllers

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

// RegisterPatient accepts either a JSON body or a multipart form with the
// registration JSON in the data field and an optional identification
// document file.
func (ctrl *PatientController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "PatientController.RegisterPatient")
	if !ok {
		return
	}

	request, document, err := ctrl.parseRegistration(r)
	if err != nil {
		ctrl.Log.Error("PatientController.RegisterPatient error parsing request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	patient, err := ctrl.PatientUsecase.RegisterPatient(ctx, request, document)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PatientController.RegisterPatient", requestID, err)
		return
	}

	ctrl.Log.Info("PatientController.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterPatientSuccessMessage, patient)
}

func (ctrl *PatientController) parseRegistration(r *http.Request) (*requests.RegisterPatient, *models.IdentificationDocument, error) {
	request := new(requests.RegisterPatient)

	if !strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		if err := decodeJSONBody(r, request); err != nil {
			return nil, nil, err
		}
		return request, nil, nil
	}

	maxMemory := ctrl.InternalConfig.Storage.IdentificationMaxUploadSizeInMB << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, nil, exceptions.ErrRequestTooLarge(err, maxBytesErr.Limit)
		}
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	if err := json.Unmarshal([]byte(r.FormValue(constvars.MultipartFieldData)), request); err != nil {
		return nil, nil, exceptions.ErrCannotParseJSON(err)
	}

	file, header, err := r.FormFile(constvars.MultipartFieldIdentificationDocument)
	if errors.Is(err, http.ErrMissingFile) {
		return request, nil, nil
	}
	if err != nil {
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	return request, &models.IdentificationDocument{
		FileName:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Size:        int64(len(content)),
		Content:     content,
	}, nil
}
