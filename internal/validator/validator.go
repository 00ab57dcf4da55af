package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps a go-playground validator with English translations.
type Validator struct {
	v     *govalidator.Validate
	trans ut.Translator
}

// New creates a Validator with the default English translations registered.
func New() *Validator {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &Validator{v: v, trans: trans}
}

// translateErrors takes a validation error and returns a map of
// field namespace → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func (val *Validator) translateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Namespace()] = fe.Translate(val.trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Struct validates dst and flattens any failures into a single error.
func (val *Validator) Struct(dst interface{}) error {
	err := val.v.Struct(dst)
	if err == nil {
		return nil
	}

	fields := val.translateErrors(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
