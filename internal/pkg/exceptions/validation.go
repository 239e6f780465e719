package exceptions

import (
	"carepulse-service/internal/pkg/constvars"
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldValidationErrors keys every violation by the field's JSON name. The
// validator reports one error per field, so no violation is dropped.
func FieldValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return fields
}

func FormatAllValidationErrors(err error) string {
	fields := FieldValidationErrors(err)
	if len(fields) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, name+" "+fields[name])
	}
	return strings.Join(messages, ", ")
}

func validationMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			return strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		}
		return strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return customMessage
}
