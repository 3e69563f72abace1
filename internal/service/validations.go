package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("platform_handle", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot start with a separator
				if i == 0 && (char == '_' || char == '-' || char == '.') {
					return false
				}
				// Letters, digits, underscore, hyphen or dot
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' && char != '-' && char != '.' {
					return false
				}
			}
			return true
		})
	})
}

// ValidateHandle checks a platform username before any upstream call is made.
func ValidateHandle(handle string) error {
	return validate.Var(handle, "required,max=64,platform_handle")
}
