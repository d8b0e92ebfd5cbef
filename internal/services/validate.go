package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GregMSThompson/village-dashboard/internal/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest checks struct tags and reports every failing field as a
// single ValidationError.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValidationError(err.Error())
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	sort.Strings(parts)
	return errs.NewValidationError("invalid request: " + strings.Join(parts, ", "))
}
