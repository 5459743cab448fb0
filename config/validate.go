package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/pedroute/agent"
)

// ErrInvalidConfig is returned by Validate and the loaders.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("routechoice", func(fl validator.FieldLevel) bool {
		_, err := agent.ParseRouteChoice(fl.Field().String())
		return err == nil
	})
}

// Validate checks every section against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, formatValidationError(err))
	}

	return nil
}

// formatValidationError reports the first failed constraint as
// "Section.Field: reason".
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.StructNamespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gt", "gte":
			return fmt.Errorf("%s: must be %s %s", field, e.Tag(), param)
		case "lt", "lte":
			return fmt.Errorf("%s: must be %s %s", field, e.Tag(), param)
		case "min":
			return fmt.Errorf("%s: needs at least %s entries", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s], got %q", field, param, e.Value())
		case "gtfield":
			return fmt.Errorf("%s: must exceed %s", field, param)
		case "routechoice":
			return fmt.Errorf("%s: unknown route choice %q", field, e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
