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

// ValidatorSvc is the shared validator with its English translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	svcOnce sync.Once
	svc     *ValidatorSvc
)

// messages replacing the stock English text; {0} is the json field name
var shortMessages = map[string]string{
	"min":  "{0} must be at least {1}",
	"max":  "{0} must be at most {1}",
	"slug": "{0} must be a lowercase identifier",
}

// Init builds the validator once. Field names in messages come from json tags.
func Init() *ValidatorSvc {
	svcOnce.Do(func() {
		locale := en.New()
		trans, _ := ut.New(locale, locale).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterValidation("slug", isSlug)

		for tag, text := range shortMessages {
			overrideMessage(v, trans, tag, text)
		}
		svc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return svc
}

// Get returns the shared validator
func Get() *ValidatorSvc { return Init() }

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// isSlug accepts identifiers like data_science, senior or gemini-1
func isSlug(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || len(s) > 40 {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-')
	}) < 0
}

func overrideMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	var (
		inv  *validator.InvalidValidationError
		errs validator.ValidationErrors
	)
	switch {
	case err == nil:
		return "", ""
	case errors.As(err, &inv):
		return "", inv.Error()
	case errors.As(err, &errs) && len(errs) > 0:
		return errs[0].Field(), errs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}
