package request

import (
	"sync"

	"venue-deals/internal/domain/deal"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations adds the schedule tags used by the deal DTOs to gin's
// validator. Safe to call more than once.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("clock", validateClock)
		_ = v.RegisterValidation("weekday", validateWeekday)
	})
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := deal.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, err := deal.ParseWeekday(fl.Field().String())
	return err == nil
}
