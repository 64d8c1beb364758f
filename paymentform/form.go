// Package paymentform provides access to the fields of payment
// account forms.
package paymentform

import "fmt"

// FieldID identifies a field of a payment account form.
type FieldID string

// Field is a single form field.
type Field struct {
	ID                  FieldID  `json:"id" yaml:"id"`
	Label               string   `json:"label,omitempty" yaml:"label,omitempty"`
	Value               string   `json:"value" yaml:"value"`
	MinLength           int      `json:"minLength,omitempty" yaml:"min_length,omitempty"`
	MaxLength           int      `json:"maxLength,omitempty" yaml:"max_length,omitempty"`
	SupportedCurrencies []string `json:"supportedCurrencies,omitempty" yaml:"supported_currencies,omitempty"`
}

// Form is an ordered collection of fields describing a
// payment account.
type Form struct {
	ID     string   `json:"id" yaml:"id"`
	Fields []*Field `json:"fields" yaml:"fields"`
}

// FieldValue returns the value of the field identified by id.
func (f *Form) FieldValue(id FieldID) (string, error) {
	field, err := f.field(id)
	if err != nil {
		return "", err
	}

	return field.Value, nil
}

// SetFieldValue sets the value of the field identified by id.
func (f *Form) SetFieldValue(id FieldID, value string) error {
	field, err := f.field(id)
	if err != nil {
		return err
	}

	field.Value = value

	return nil
}

// field returns the first field carrying id.
func (f *Form) field(id FieldID) (*Field, error) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, id)
}
