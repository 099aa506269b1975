// Package validation wraps go-playground/validator with English translations
// so that handler error payloads carry readable messages instead of raw
// validation tags.
package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator validates request payload structs.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New creates a Validator with English default translations registered.
func New() (*Validator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)

	translator, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("en translator not found")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &Validator{
		validate:   validate,
		translator: translator,
	}, nil
}

// Struct validates s against its `validate` tags. The returned error message
// is translated and safe to show to clients.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldError.Translate(v.translator))
	}

	return errors.New(strings.Join(messages, ", "))
}
