package booking_wizard

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// View модель отображения визарда, строится после каждого перехода
type View struct {
	Step      domain.Step
	CanGoBack bool
	Loading   bool

	Calendar domain.DateCalendar // шаг даты
	Date     string

	Slots               []SlotView // шаг слотов
	ChosenHours         []int
	SelectionContiguous bool
	FinalizedSlot       *domain.FinalizedSlot

	Grounds []domain.Ground // шаг площадок
	Ground  *domain.Ground

	Details      domain.CustomerDetails // шаг контактов и оплаты
	FieldErrors  map[string]string
	Checkout     *Checkout
	Confirmation *domain.Booking

	FetchError string // временная ошибка загрузки, доступен повтор
	Message    string // последнее сообщение для пользователя
}

// SlotView час в сетке выбора
type SlotView struct {
	Hour    int
	Label   string
	Enabled bool
	Chosen  bool
}

// Checkout параметры для открытия платежного виджета
type Checkout struct {
	KeyID       string
	OrderID     string
	BookingID   string
	Amount      int64
	Currency    string
	Description string
	Name        string
	Email       string
	Phone       string
	ExpiresAt   time.Time
}
