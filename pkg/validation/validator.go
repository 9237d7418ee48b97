// Package validation checks configuration values, either declaratively
// through struct tags or with the fluent ConfigValidator.
package validation

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Bounds shared by config files and CLI flags
	MinCliqueSize = 2
	MaxSweeps     = 1_000_000
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("readable", readableFile)
}

// readableFile is the "readable" tag: the path names a regular file that
// can be opened. Empty values pass so the tag combines with omitempty.
func readableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return true
	}
	return ValidateInputPath(path) == nil
}

// Struct validates a tagged struct and reports every failing field
func Struct(v any) error {
	if v == nil {
		return errors.New("value to validate cannot be nil")
	}
	return formatValidationError(validate.Struct(v))
}

// ValidateInputPath checks that path names a readable regular file
func ValidateInputPath(path string) error {
	if path == "" {
		return errors.New("input path cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input path %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path %q is not a regular file", path)
	}
	return nil
}

// ValidateCliqueSize checks a clique percolation k value
func ValidateCliqueSize(k int) error {
	if k < MinCliqueSize {
		return fmt.Errorf("clique size must be at least %d, got %d", MinCliqueSize, k)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var result *multierror.Error
	for _, e := range validationErrs {
		result = multierror.Append(result, formatFieldError(e))
	}
	return result.ErrorOrNil()
}

func formatFieldError(e validator.FieldError) error {
	field := e.Namespace()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s", field, param)
	case "max", "lte":
		return fmt.Errorf("%s: must not exceed %s", field, param)
	case "oneof":
		return fmt.Errorf("%s: %v must be one of [%s]", field, e.Value(), param)
	case "readable":
		return fmt.Errorf("%s: %q is not a readable file", field, e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
