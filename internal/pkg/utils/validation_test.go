package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatientRequest() *requests.RegisterPatient {
	return &requests.RegisterPatient{
		UserID:                 "user-1",
		Name:                   "Jane Roe",
		Email:                  "jane@example.com",
		Phone:                  "+15555550100",
		BirthDate:              "1990-04-12",
		Gender:                 "female",
		Address:                "14 Harbor Street",
		Occupation:             "Engineer",
		EmergencyContactName:   "John Roe",
		EmergencyContactNumber: "+15555550101",
		PrimaryPhysician:       "John Green",
		InsuranceProvider:      "Acme Health",
		InsurancePolicyNumber:  "ACM-1234",
		TreatmentConsent:       true,
		DisclosureConsent:      true,
		PrivacyConsent:         true,
	}
}

func TestValidateStruct_ReportsEveryMissingField(t *testing.T) {
	err := ValidateStruct(&requests.CreateUser{Name: "Jane Roe"})
	require.Error(t, err)

	fields := exceptions.FieldValidationErrors(err)
	assert.Len(t, fields, 2)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
}

func TestValidateStruct_PhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+15555550100", true},
		{"+6281234567890", true},
		{"15555550100", false},
		{"+123", false},
		{"+1555555010012345", false},
		{"+1555-555-0100", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := ValidateStruct(&requests.CreateUser{Name: "Jane", Email: "jane@example.com", Phone: tt.phone})
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}

func TestValidateStruct_ConsentGating(t *testing.T) {
	request := validPatientRequest()
	require.NoError(t, ValidateStruct(request))

	request.PrivacyConsent = false
	err := ValidateStruct(request)
	require.Error(t, err)

	fields := exceptions.FieldValidationErrors(err)
	assert.Len(t, fields, 1)
	assert.Equal(t, constvars.CustomValidationErrorMessages["consent"], fields["privacyConsent"])
}

func TestValidateStruct_BirthDateMustBeInThePast(t *testing.T) {
	request := validPatientRequest()
	request.BirthDate = "2999-01-01"

	fields := exceptions.FieldValidationErrors(ValidateStruct(request))
	assert.Contains(t, fields, "birthDate")

	request.BirthDate = "1990-04-12T00:00:00Z"
	assert.NoError(t, ValidateStruct(request))

	request.BirthDate = "12/04/1990"
	assert.Error(t, ValidateStruct(request))
}

func TestDecodeAndValidate(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		_, err := DecodeAndValidate(constvars.ValidationKind("nope"), []byte(`{}`))

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodeAndValidate(constvars.ValidationKindCreateUser, []byte(`{"name":`))

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, customErr.Fields)
	})

	t.Run("violations carry json field names", func(t *testing.T) {
		_, err := DecodeAndValidate(constvars.ValidationKindCreateAppointment, []byte(`{"userId":"u","patientId":"p","primaryPhysician":"John Green","schedule":"tomorrow"}`))

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Len(t, customErr.Fields, 2)
		assert.Contains(t, customErr.Fields, "schedule")
		assert.Contains(t, customErr.Fields, "reason")
	})

	t.Run("cancel requires a reason", func(t *testing.T) {
		_, err := DecodeAndValidate(constvars.ValidationKindCancelAppointment, []byte(`{"primaryPhysician":"John Green","schedule":"2030-01-02T10:00:00Z"}`))

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.Fields, "cancellationReason")
	})

	t.Run("valid payload returns typed request", func(t *testing.T) {
		request, err := DecodeAndValidate(constvars.ValidationKindScheduleAppointment, []byte(`{"primaryPhysician":"John Green","schedule":"2030-01-02T10:00:00Z"}`))
		require.NoError(t, err)

		schedule, ok := request.(*requests.ScheduleAppointment)
		require.True(t, ok)
		assert.Equal(t, "John Green", schedule.PrimaryPhysician)
	})

	t.Run("padded email is trimmed before validation", func(t *testing.T) {
		request, err := DecodeAndValidate(constvars.ValidationKindCreateUser, []byte(`{"name":"Jane Roe","email":"  jane@example.com ","phone":"+15555550100"}`))
		require.NoError(t, err)

		user, ok := request.(*requests.CreateUser)
		require.True(t, ok)
		assert.Equal(t, "jane@example.com", user.Email)
	})
}
