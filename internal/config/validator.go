package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	tuierrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := components.ThemeByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator with the custom rules
// registered.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate checks cfg against its struct rules and the cross-field rules.
func Validate(cfg *Config) error {
	if cfg == nil {
		return tuierrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	names := make(map[string]struct{}, len(cfg.Sources))
	for i, src := range cfg.Sources {
		if _, dup := names[src.Name]; dup {
			return tuierrors.NewValidationError(fmt.Sprintf("sources[%d].name", i), fmt.Sprintf("duplicate source name %q", src.Name), nil)
		}
		names[src.Name] = struct{}{}
	}
	return nil
}

// convertValidationError reports the first failed rule as a ValidationError
// named after the YAML path of the field.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := fieldPath(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if fe.Tag() == "theme_name" {
			msg = fmt.Sprintf("unknown theme %q (known: %s)", fe.Value(), strings.Join(components.ThemeNames(), ", "))
		}
		return tuierrors.NewValidationError(field, msg, err)
	}
	return tuierrors.NewValidationError("config", err.Error(), err)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}
	return rest
}
