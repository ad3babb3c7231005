package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their flag name so messages match the command line.
	validate.RegisterTagNameFunc(displayName)
}

func displayName(field reflect.StructField) string {
	if name := field.Tag.Get("flag"); name != "" {
		return "-" + name
	}
	return field.Name
}

// Validate checks `validate` struct tags on target.
func Validate(target any) error {
	err := validate.Struct(target)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	typ := reflect.Indirect(reflect.ValueOf(target)).Type()
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(typ, fe))
	}
	return fmt.Errorf("validate config: %s", strings.Join(msgs, "; "))
}

func describe(typ reflect.Type, fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fmt.Sprint(fe.Value()))
	case "required_with":
		return fmt.Sprintf("%s is required when %s is set", fe.Field(), paramNames(typ, fe.Param()))
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// paramNames maps the space separated field names of a cross-field tag
// param to their display names.
func paramNames(typ reflect.Type, param string) string {
	fields := strings.Fields(param)
	for i, name := range fields {
		if typ.Kind() != reflect.Struct {
			break
		}
		if field, ok := typ.FieldByName(name); ok {
			fields[i] = displayName(field)
		}
	}
	return strings.Join(fields, ", ")
}
