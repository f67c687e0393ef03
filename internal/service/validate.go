package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// initValidator creates the validator with the custom rules used by request
// messages. Field names in errors follow the json tags.
func initValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	vld.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := vld.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return value.IsPositive()
	}); err != nil {
		return nil, fmt.Errorf("register 'positive_decimal': %w", err)
	}

	if err := vld.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return !value.IsNegative()
	}); err != nil {
		return nil, fmt.Errorf("register 'nonnegative_decimal': %w", err)
	}

	return vld, nil
}

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})
	return validate, errValidate
}

var violationMessages = map[string]func(param string) string{
	"required":            func(string) string { return "is required" },
	"email":               func(string) string { return "must be a valid email" },
	"max":                 func(p string) string { return "must be at most " + p + " characters" },
	"min":                 func(p string) string { return "must have at least " + p + " entries" },
	"oneof":               func(p string) string { return "must be one of [" + p + "]" },
	"nefield":             func(p string) string { return "must differ from " + p },
	"positive_decimal":    func(string) string { return "must be a positive amount" },
	"nonnegative_decimal": func(string) string { return "must not be negative" },
	"datetime": func(p string) string {
		if p == "2006-01" {
			return "must be a month in YYYY-MM format"
		}
		return "must be a date in YYYY-MM-DD format"
	},
}

// validateMessage checks a request's struct tags and returns an
// InvalidArgument error listing every offending field.
func validateMessage(msg any) error {
	vld, err := getValidator()
	if err != nil {
		return fmt.Errorf("validator unavailable: %w", err)
	}

	err = vld.Struct(msg)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validate request: %w", err)
	}

	v := violations{}
	for _, fe := range fieldErrors {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		message := "is invalid"
		if format, ok := violationMessages[fe.Tag()]; ok {
			message = format(fe.Param())
		}
		v.add(field, "%s", message)
	}
	return v.err()
}
