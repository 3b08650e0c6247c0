package utils

import (
	"github.com/pkg/errors"
)

// NewConfigValidationFieldRequiredError is used when a config field is missing.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return errors.Errorf("%s: %q is required", path, field)
}
