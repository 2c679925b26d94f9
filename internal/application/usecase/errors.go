// backend/internal/application/usecase/errors.go
package usecase

import (
	"errors"
	"strings"

	"fenestra/internal/domain/configurator"
)

var (
	ErrInvalidArgument = errors.New("usecase: invalid argument")
	ErrUnknownCategory = errors.New("usecase: onbekende productcategorie")
	ErrNoConceptDraft  = errors.New("usecase: geen openstaande offerte gevonden")
)

// ValidationError carries per-field problems back to the HTTP layer so the
// storefront can mark exactly which inputs are missing or wrong.
type ValidationError struct {
	Fields []configurator.FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "usecase: validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}
	return "usecase: " + strings.Join(msgs, "; ")
}

// requiredError builds a ValidationError out of plain missing-field names.
func requiredError(fields []string) *ValidationError {
	fes := make([]configurator.FieldError, 0, len(fields))
	for _, f := range fields {
		fes = append(fes, configurator.FieldError{Field: f, Message: f + " is verplicht"})
	}
	return &ValidationError{Fields: fes}
}
