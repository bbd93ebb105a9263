// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// ValidatorSvc pairs the validator with its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

// short messages for the tags our DTOs use; true means the tag param is {1}
var messages = []struct {
	tag, text string
	param     bool
}{
	{"min", "{0} must be at least {1}", true},
	{"max", "{0} must be at most {1}", true},
	{"oneof", "{0} must be one of [{1}]", true},
	{"bcp47_language_tag", "{0} must be a BCP 47 language tag", false},
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton, building it on first use
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		for _, m := range messages {
			register(v, trans, m.tag, m.text, m.param)
		}
		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// RegisterValidation registers a custom tag on the singleton
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

// jsonName reports fields by their json key so messages match the request body
func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func register(v *validator.Validate, trans ut.Translator, tag, text string, withParam bool) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			params := []string{fe.Field()}
			if withParam {
				params = append(params, fe.Param())
			}
			msg, _ := t.T(tag, params...)
			return msg
		},
	)
}
