package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9()+\-\s]*$`)

// NewValidator returns a validator that reports json field names and knows
// the domain rules used by request structs.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var letter, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsLetter(r):
				letter = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return letter && digit
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("company_status", func(fl validator.FieldLevel) bool {
		return models.CompanyStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("lead_source", func(fl validator.FieldLevel) bool {
		return models.LeadSource(fl.Field().String()).IsValid()
	})
	return v
}

// validate runs struct validation and converts failures into a field-level ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}
	return apperrors.NewFieldsValidationError(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "password":
		return "must contain a letter and a digit"
	case "phone":
		return "must be a valid phone number"
	case "company_status":
		return "must be one of lead, negotiating, won, lost"
	case "lead_source":
		return "must be one of website, referral, cold_call, other"
	default:
		return "is invalid"
	}
}

// trimmedOrNil turns blank optional strings into nil
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
