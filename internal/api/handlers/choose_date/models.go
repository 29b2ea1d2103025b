package choose_date

import (
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

// ChooseDateRequest HTTP request model
type ChooseDateRequest struct {
	Date string `json:"date" validate:"isodate"`
}

// Validate проверяет формат даты
func (r *ChooseDateRequest) Validate() error {
	if errs := validation.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}
