package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{6,15}$`)

// RegisterValidators adds the custom binding tags to gin's validator engine.
//
//	stay_date: a YYYY-MM-DD calendar date
//	phone:     digits with an optional leading +, separators ignored
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("stay_date", stayDate); err != nil {
		return fmt.Errorf("register stay_date: %w", err)
	}
	if err := v.RegisterValidation("phone", phone); err != nil {
		return fmt.Errorf("register phone: %w", err)
	}
	return nil
}

func stayDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func phone(fl validator.FieldLevel) bool {
	return ValidPhone(fl.Field().String())
}

// ValidPhone accepts "+66 81-234-5678" style numbers.
func ValidPhone(raw string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(raw)
	return phonePattern.MatchString(cleaned)
}
