// Package validation wraps validator/v10 with English messages keyed by form field.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type Validator struct {
	*validator.Validate
	trans ut.Translator
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Messages read "Email must be a valid email address", so name fields by label.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(err)
	}

	return &Validator{Validate: v, trans: trans}
}

// FieldErrors maps form field names (the `form` tag, else the lowercased Go field
// name) to a message. It returns nil when err holds no field errors.
func (v *Validator) FieldErrors(s any, err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := strings.ToLower(fe.StructField())
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if name, _, _ := strings.Cut(sf.Tag.Get("form"), ","); name != "" {
				key = name
			}
		}
		if _, exists := out[key]; !exists {
			out[key] = fe.Translate(v.trans)
		}
	}

	return out
}
