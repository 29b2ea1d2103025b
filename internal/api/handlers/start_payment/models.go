package start_payment

import (
	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// StartPaymentRequest HTTP request model, форма контактов.
// Поля проверяются визардом, ошибки возвращаются по именам полей.
type StartPaymentRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ToDomain конвертирует HTTP request в доменную модель
func (r *StartPaymentRequest) ToDomain() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}
