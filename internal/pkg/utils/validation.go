package utils

import (
	"bytes"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"fmt"

	"github.com/goccy/go-json"
)

var validationKindRequests = map[constvars.ValidationKind]func() interface{}{
	constvars.ValidationKindCreateUser:          func() interface{} { return new(requests.CreateUser) },
	constvars.ValidationKindRegisterPatient:     func() interface{} { return new(requests.RegisterPatient) },
	constvars.ValidationKindCreateAppointment:   func() interface{} { return new(requests.CreateAppointment) },
	constvars.ValidationKindScheduleAppointment: func() interface{} { return new(requests.ScheduleAppointment) },
	constvars.ValidationKindCancelAppointment:   func() interface{} { return new(requests.CancelAppointment) },
}

// DecodeAndValidate decodes a raw payload into the request type registered
// for kind and validates it. The typed request is returned only when valid.
func DecodeAndValidate(kind constvars.ValidationKind, raw []byte) (interface{}, error) {
	newRequest, ok := validationKindRequests[kind]
	if !ok {
		return nil, exceptions.ErrUnknownValidationKind(fmt.Errorf("no schema registered"), string(kind))
	}

	request := newRequest()
	if len(bytes.TrimSpace(raw)) > 0 {
		err := json.Unmarshal(raw, request)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	if normalizer, ok := request.(interface{ Normalize() }); ok {
		normalizer.Normalize()
	}

	err := ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}
