package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumber)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("past_date", validatePastDate)
	validate.RegisterValidation("consent", validateConsent)
}

// ValidateStruct reports every failing field at once.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validatePastDate(fl validator.FieldLevel) bool {
	date, err := ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return date.Before(time.Now())
}

func validateConsent(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Bool {
		return false
	}
	return fl.Field().Bool()
}
