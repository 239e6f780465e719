package exceptions

import (
	"carepulse-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	Fields        map[string]string `json:"fields,omitempty"`
	DevMessage    string            `json:"dev_message,omitempty"`
	Location      *Location         `json:"location,omitempty"`
	Err           error             `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the caller of the constructor func as the error location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
		Err:           err,
	}
}

// ToCustomError translates any error returned by the service layers into the
// shape written back to clients.
func ToCustomError(err error) *CustomError {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}

	var transitionErr *TransitionError
	if errors.As(err, &transitionErr) {
		return ErrInvalidStatusTransition(transitionErr)
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		switch storeErr.Kind {
		case StoreErrorConflict:
			return ErrStoreConflict(storeErr)
		case StoreErrorNotFound:
			return ErrStoreNotFound(storeErr)
		case StoreErrorTransient:
			return ErrStoreTransient(storeErr)
		default:
			return ErrStoreUnknown(storeErr)
		}
	}

	return ErrServerProcess(err)
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
