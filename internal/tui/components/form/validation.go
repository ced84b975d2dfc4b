package form

import "fmt"

// FieldValidation holds runtime validation rules for a form field.
type FieldValidation struct {
	Required  bool
	MaxLength int
}

// ValidateText checks a text value against the validation rules.
func (v FieldValidation) ValidateText(value string) string {
	if v.Required && value == "" {
		return "required"
	}
	if v.MaxLength > 0 && len(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	return ""
}
