package admin

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/usecase/slot_selection"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

type loginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type priceForm struct {
	GroundID     string  `json:"groundId" validate:"required"`
	PricePerHour float64 `json:"pricePerHour" validate:"gt=0,lte=100000"`
}

type offlineForm struct {
	GroundID string   `json:"groundId" validate:"required"`
	Date     string   `json:"date" validate:"isodate"`
	Amount   *float64 `json:"amount" validate:"omitempty,gt=0"`
}

type blockForm struct {
	Date   string  `json:"date" validate:"isodate"`
	Hour   int     `json:"hour" validate:"hour"`
	Reason *string `json:"reason" validate:"omitempty,max=200"`
}

// validateOfflineBooking проверяет офлайн-бронирование и приводит часы к непрерывному диапазону.
// Почта для офлайн-клиента необязательна.
func validateOfflineBooking(in *OfflineBookingInput) (*domain.OfflineBooking, validation.FieldErrors) {
	errs := validation.Struct(offlineForm{GroundID: in.GroundID, Date: in.Date, Amount: in.Amount})
	if errs == nil {
		errs = validation.FieldErrors{}
	}

	for field, msg := range validation.ValidateCustomer(in.Customer) {
		if field == domain.FieldEmail && in.Customer.Email == "" {
			continue
		}
		errs[field] = msg
	}

	slot, err := slot_selection.Normalize(in.Hours)
	if err != nil {
		errs["hours"] = err.Error()
	}
	for _, h := range in.Hours {
		if !domain.IsValidHour(h) {
			errs["hours"] = fmt.Sprintf("hour %d is out of range", h)
			break
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	customer := in.Customer
	customer.Name = strings.TrimSpace(customer.Name)
	return &domain.OfflineBooking{
		GroundID: in.GroundID,
		Date:     in.Date,
		Slot:     slot,
		Customer: customer,
		Amount:   in.Amount,
	}, nil
}
