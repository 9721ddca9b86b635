package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/trickstertwo/xlogs"
)

// ConfigError reports the first configuration field that failed validation.
//
//nolint:revive // ConfigError reads better than Error at call sites
type ConfigError struct {
	Field   string // koanf key, e.g. "min_level"
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("koanf") })
	_ = v.RegisterValidation("xlogs_level", func(fl validator.FieldLevel) bool {
		return xlogs.IsValidLevel(fl.Field().String())
	})
	_ = v.RegisterValidation("xlogs_pattern", func(fl validator.FieldLevel) bool {
		_, err := regexp.Compile(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks cfg and returns a *ConfigError for the first invalid field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ConfigError{Field: "config", Message: "is required"}
	}
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return &ConfigError{Field: ves[0].Field(), Message: message(ves[0])}
	}
	return err
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s (got %q)", fe.Param(), fe.Value())
	case "xlogs_level":
		return fmt.Sprintf("%q is not a level; valid levels: %v", fe.Value(), xlogs.Levels())
	case "xlogs_pattern":
		return fmt.Sprintf("%q is not a valid regular expression", fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "failed validation"
	}
}
