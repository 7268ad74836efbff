package helpers

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	translator     ut.Translator
	translatorOnce sync.Once
	registered     sync.Map
)

func englishTranslator(validate *validator.Validate) ut.Translator {
	translatorOnce.Do(func() {
		eng := en.New()
		uni := ut.New(eng, eng)
		translator, _ = uni.GetTranslator("en")
	})

	if _, done := registered.LoadOrStore(validate, true); !done {
		en_translations.RegisterDefaultTranslations(validate, translator)
	}

	return translator
}

// GetErrorMessages joins the English translations of every validation error.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(errs, &validationErrors) {
		return errs.Error()
	}

	trans := englishTranslator(validate)

	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, e.Translate(trans))
	}
	return strings.Join(errorMessages, ", ")
}
