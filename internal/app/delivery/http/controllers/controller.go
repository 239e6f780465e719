package controllers

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// requestIDOrAbort writes an error response and returns false when the
// request id middleware did not run.
func requestIDOrAbort(log *zap.Logger, w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	requestID := utils.RequestIDFromContext(r.Context())
	if requestID == "" {
		log.Error(method + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	log.Info(method+" called", zap.String(constvars.LoggingRequestIDKey, requestID))
	return requestID, true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, method, requestID string, err error) {
	log.Error(method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func validateURLParamID(log *zap.Logger, w http.ResponseWriter, method, requestID, paramName, value string) bool {
	if err := utils.ValidateUrlParamID(value); err != nil {
		log.Warn(method+" invalid url param",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("param", paramName),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrURLParamIDValidation(err, paramName))
		return false
	}
	return true
}

// bodyReadError maps a failed body read, reporting a body cut off by
// BodyLimit as too large.
func bodyReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return exceptions.ErrRequestTooLarge(err, maxBytesErr.Limit)
	}
	return exceptions.ErrCannotParseJSON(err)
}

func decodeJSONBody(r *http.Request, v interface{}) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return bodyReadError(err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
