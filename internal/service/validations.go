package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report json names so reasons match the request body
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterStructValidation(func(sl validator.StructLevel) {
			req := sl.Current().Interface().(CreateChallengeRequest)
			limit, ok := entity.MaxDuration[req.DurationUnit]
			if ok && req.Duration > limit {
				sl.ReportError(req.Duration, "duration", "Duration", "max_for_unit", fmt.Sprintf("%d %s", limit, req.DurationUnit))
			}
		}, CreateChallengeRequest{})
	})
}

func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errorvalues.Validation(err.Error())
	}
	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		reasons = append(reasons, describe(fe))
	}
	return errorvalues.Validation(strings.Join(reasons, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return field + " must contain at least " + fe.Param() + " item(s)"
		}
		return field + " must be at least " + fe.Param() + " characters long"
	case "max":
		if fe.Kind() == reflect.Slice {
			return field + " must contain at most " + fe.Param() + " items"
		}
		return field + " must be at most " + fe.Param() + " characters long"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max_for_unit":
		return field + " cannot exceed " + fe.Param()
	case "email", "url":
		return field + " must be a valid " + fe.Tag()
	default:
		return field + " is invalid"
	}
}
