// Package validation configures go-playground/validator with English messages
// and the enum rule shared by request payloads.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
)

// TagEnum validates fields whose type exposes Valid() bool.
const TagEnum = "enum"

type enumValue interface {
	Valid() bool
}

var (
	once     sync.Once
	shared   *validator.Validate
	trans    ut.Translator
	setupErr error
)

// New returns the process-wide validator using JSON field names and English
// translations. It panics if the translations cannot be registered.
func New() *validator.Validate {
	once.Do(func() {
		shared, trans, setupErr = build()
	})
	if setupErr != nil {
		panic(fmt.Sprintf("validation: %v", setupErr))
	}
	return shared
}

func build() (*validator.Validate, ut.Translator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(TagEnum, func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(enumValue)
		if !ok {
			return false
		}
		return value.Valid()
	}); err != nil {
		return nil, nil, fmt.Errorf("register %s rule: %w", TagEnum, err)
	}

	locale := en.New()
	t, found := ut.New(locale, locale).GetTranslator("en")
	if !found {
		return nil, nil, errors.New("english translator unavailable")
	}
	if err := enTranslations.RegisterDefaultTranslations(v, t); err != nil {
		return nil, nil, fmt.Errorf("register default translations: %w", err)
	}
	if err := v.RegisterTranslation(TagEnum, t, func(ut ut.Translator) error {
		return ut.Add(TagEnum, "{0} has an unsupported value", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		msg, _ := ut.T(TagEnum, fe.Field())
		return msg
	}); err != nil {
		return nil, nil, fmt.Errorf("register %s translation: %w", TagEnum, err)
	}

	return v, t, nil
}

// Details maps each failing field to a readable message.
func Details(err error) map[string]string {
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		New()
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}
	fields["detail"] = err.Error()
	return fields
}

// Error wraps err as a VALIDATION_ERROR carrying per-field details.
func Error(err error, message string) *appErrors.Error {
	return appErrors.Validation(err, message, Details(err))
}
