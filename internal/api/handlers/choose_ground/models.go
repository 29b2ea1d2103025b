package choose_ground

import (
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

// ChooseGroundRequest HTTP request model
type ChooseGroundRequest struct {
	GroundID string `json:"groundId" validate:"required"`
}

// Validate проверяет наличие ID площадки
func (r *ChooseGroundRequest) Validate() error {
	if errs := validation.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}
