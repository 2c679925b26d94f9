// backend/internal/domain/configurator/field.go
package configurator

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the closed set of form field kinds. Validation behavior follows the
// kind; there is no per-field-name dispatch anywhere else.
type Kind string

const (
	KindEnum     Kind = "enum"     // value must be one of Options
	KindNumber   Kind = "number"   // integer millimeters within [Min, Max]
	KindText     Kind = "text"     // free text
	KindPhotoSet Kind = "photoSet" // photo attachments, handled outside formData
)

// Field is one input of a configuration form. The validation rule travels
// with the field as data.
type Field struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`  // KindEnum
	Min      int      `json:"min,omitempty"`      // KindNumber, inclusive
	Max      int      `json:"max,omitempty"`      // KindNumber, inclusive
	MaxCount int      `json:"maxCount,omitempty"` // KindPhotoSet
}

// FieldError names an invalid field together with a user-facing (Dutch)
// message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// validate checks a single submitted value against the field's rule.
// An empty value on an optional field is always fine.
func (f Field) validate(value string) *FieldError {
	v := strings.TrimSpace(value)

	if v == "" {
		if f.Required && f.Kind != KindPhotoSet {
			return &FieldError{Field: f.ID, Message: f.Label + " is verplicht"}
		}
		return nil
	}

	switch f.Kind {
	case KindEnum:
		for _, opt := range f.Options {
			if opt == v {
				return nil
			}
		}
		return &FieldError{Field: f.ID, Message: f.Label + " heeft een ongeldige waarde"}

	case KindNumber:
		n, err := strconv.Atoi(v)
		if err != nil {
			return &FieldError{Field: f.ID, Message: f.Label + " moet een getal zijn"}
		}
		if n < f.Min || n > f.Max {
			return &FieldError{
				Field:   f.ID,
				Message: fmt.Sprintf("%s moet tussen %d en %d mm liggen", f.Label, f.Min, f.Max),
			}
		}
		return nil

	case KindText:
		return nil

	case KindPhotoSet:
		// Photo references never travel through formData.
		return nil
	}

	return &FieldError{Field: f.ID, Message: f.Label + " heeft een onbekend veldtype"}
}
