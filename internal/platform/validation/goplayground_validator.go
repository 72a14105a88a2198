package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type GoPlaygroundValidator struct {
	v        *validator.Validate
	messages map[string]string
}

var _ Validator = (*GoPlaygroundValidator)(nil)

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// register function to get tag name from json tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &GoPlaygroundValidator{
		v:        v,
		messages: make(map[string]string),
	}
}

// RegisterStringRule adds a custom tag that passes when ok returns true for
// the string field value. msg is the failure message; %s is the field name.
func (va *GoPlaygroundValidator) RegisterStringRule(tag, msg string, ok func(string) bool) error {
	err := va.v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return ok(fl.Field().String())
	})
	if err != nil {
		return fmt.Errorf("register validation %q: %w", tag, err)
	}

	va.messages[tag] = msg
	return nil
}

func (va *GoPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return nil
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = va.validationMessage(e)
	}

	return errMap
}

func (va *GoPlaygroundValidator) validationMessage(e validator.FieldError) string {
	if msg, ok := va.messages[e.Tag()]; ok {
		return fmt.Sprintf(msg, e.Field())
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
