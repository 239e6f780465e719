package controllers

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ValidationController lets form clients check a payload against the
// server-side rules without submitting it.
type ValidationController struct {
	Log *zap.Logger
}

func NewValidationController(logger *zap.Logger) *ValidationController {
	return &ValidationController{Log: logger}
}

func (ctrl *ValidationController) ValidatePayload(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrAbort(ctrl.Log, w, r, "ValidationController.ValidatePayload")
	if !ok {
		return
	}

	kind := constvars.ValidationKind(chi.URLParam(r, constvars.URLParamValidationKind))

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("ValidationController.ValidatePayload error reading body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, bodyReadError(err))
		return
	}

	request, err := utils.DecodeAndValidate(kind, raw)
	if err != nil {
		ctrl.Log.Warn("ValidationController.ValidatePayload payload rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingValidationKindKey, string(kind)),
			zap.Any(constvars.LoggingValidationFieldsKey, exceptions.ToCustomError(err).Fields),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidationSuccessMessage, &responses.ValidationResult{
		Kind:  string(kind),
		Valid: true,
		Data:  request,
	})
}
