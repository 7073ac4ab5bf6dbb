// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("game_variant", validateGameVariant)
		_ = v.RegisterValidation("garage_size", validateGarageSize)
		_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	}
}

func validateGameVariant(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ets2", "ats":
		return true
	}
	return false
}

func validateGarageSize(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "small", "medium", "large":
		return true
	}
	return false
}

// validateCurrencyCode accepts the codes offered across both supported
// games. Whether a code is available in the profile's own game is checked
// in the service layer where the profile is known.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "EUR", "GBP", "CHF", "SEK", "NOK", "DKK", "PLN", "USD":
		return true
	}
	return false
}
