package validation

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
