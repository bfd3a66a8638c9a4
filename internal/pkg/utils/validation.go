package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	clockPattern    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	monthDayPattern = regexp.MustCompile(`^--(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("clock", validateClock)
	v.RegisterValidation("month_day", validateMonthDay)
	v.RegisterValidation("slot_minutes", validateSlotMinutes)
	return v
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateClock(fl validator.FieldLevel) bool {
	return clockPattern.MatchString(fl.Field().String())
}

func validateMonthDay(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || monthDayPattern.MatchString(value)
}

// validateSlotMinutes accepts granularities between 1 minute and one day.
func validateSlotMinutes(fl validator.FieldLevel) bool {
	minutes := fl.Field().Int()
	return minutes > 0 && minutes <= 24*60
}
