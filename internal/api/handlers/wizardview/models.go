package wizardview

import (
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/usecase/booking_wizard"
)

// ViewResponse состояние визарда для отрисовки на клиенте
type ViewResponse struct {
	SessionID string `json:"sessionId"`
	Step      string `json:"step"`
	CanGoBack bool   `json:"canGoBack"`
	Loading   bool   `json:"loading"`

	Calendar map[string][]DateResponse `json:"calendar,omitempty"`
	Date     string                    `json:"date,omitempty"`

	Slots               []SlotResponse         `json:"slots,omitempty"`
	ChosenHours         []int                  `json:"chosenHours,omitempty"`
	SelectionContiguous bool                   `json:"selectionContiguous"`
	FinalizedSlot       *FinalizedSlotResponse `json:"finalizedSlot,omitempty"`

	Grounds []GroundResponse `json:"grounds,omitempty"`
	Ground  *GroundResponse  `json:"ground,omitempty"`

	Details      *DetailsResponse  `json:"details,omitempty"`
	FieldErrors  map[string]string `json:"fieldErrors,omitempty"`
	Checkout     *CheckoutResponse `json:"checkout,omitempty"`
	Confirmation *BookingResponse  `json:"confirmation,omitempty"`

	FetchError string `json:"fetchError,omitempty"`
	Message    string `json:"message,omitempty"`
}

// DateResponse дата календаря
type DateResponse struct {
	Date    string `json:"date"`
	Enabled bool   `json:"enabled"`
}

// SlotResponse час в сетке выбора
type SlotResponse struct {
	Hour    int    `json:"hour"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
	Chosen  bool   `json:"chosen"`
}

// FinalizedSlotResponse подтвержденный диапазон часов
type FinalizedSlotResponse struct {
	StartHour int    `json:"startHour"`
	Hours     []int  `json:"hours"`
	Display   string `json:"display"`
}

// GroundResponse площадка
type GroundResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Available    bool     `json:"available"`
	Price        float64  `json:"price"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// DetailsResponse введенные контакты
type DetailsResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// CheckoutResponse параметры платежного виджета
type CheckoutResponse struct {
	KeyID       string    `json:"key"`
	OrderID     string    `json:"orderId"`
	BookingID   string    `json:"bookingId"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"contact"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// BookingResponse подтвержденное бронирование
type BookingResponse struct {
	ID          string  `json:"id"`
	GroundName  string  `json:"groundName"`
	Date        string  `json:"date"`
	StartHour   int     `json:"startHour"`
	Hours       []int   `json:"hours"`
	Display     string  `json:"display"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

// ErrorWithViewResponse ошибка действия вместе с текущим состоянием визарда
type ErrorWithViewResponse struct {
	Code        int               `json:"code"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	View        *ViewResponse     `json:"view,omitempty"`
}

// FromView конвертирует модель отображения визарда в HTTP ответ
func FromView(sessionID string, v booking_wizard.View) *ViewResponse {
	resp := &ViewResponse{
		SessionID:           sessionID,
		Step:                v.Step.String(),
		CanGoBack:           v.CanGoBack,
		Loading:             v.Loading,
		Date:                v.Date,
		ChosenHours:         v.ChosenHours,
		SelectionContiguous: v.SelectionContiguous,
		FieldErrors:         v.FieldErrors,
		FetchError:          v.FetchError,
		Message:             v.Message,
	}

	if v.Calendar != nil {
		resp.Calendar = make(map[string][]DateResponse, len(v.Calendar))
		for month, dates := range v.Calendar {
			out := make([]DateResponse, len(dates))
			for i, d := range dates {
				out[i] = DateResponse{Date: d.Date, Enabled: d.Enabled}
			}
			resp.Calendar[month] = out
		}
	}

	for _, s := range v.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{Hour: s.Hour, Label: s.Label, Enabled: s.Enabled, Chosen: s.Chosen})
	}

	if v.FinalizedSlot != nil {
		resp.FinalizedSlot = &FinalizedSlotResponse{
			StartHour: v.FinalizedSlot.StartHour,
			Hours:     v.FinalizedSlot.Hours,
			Display:   v.FinalizedSlot.DisplayRange(),
		}
	}

	for _, g := range v.Grounds {
		resp.Grounds = append(resp.Grounds, fromGround(g))
	}
	if v.Ground != nil {
		g := fromGround(*v.Ground)
		resp.Ground = &g
	}

	if v.Step == domain.StepDetails {
		resp.Details = &DetailsResponse{Name: v.Details.Name, Phone: v.Details.Phone, Email: v.Details.Email}
	}

	if c := v.Checkout; c != nil {
		resp.Checkout = &CheckoutResponse{
			KeyID:       c.KeyID,
			OrderID:     c.OrderID,
			BookingID:   c.BookingID,
			Amount:      c.Amount,
			Currency:    c.Currency,
			Description: c.Description,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			ExpiresAt:   c.ExpiresAt,
		}
	}

	if b := v.Confirmation; b != nil {
		resp.Confirmation = &BookingResponse{
			ID:          b.ID,
			GroundName:  b.GroundName,
			Date:        b.Date,
			StartHour:   b.StartHour,
			Hours:       b.Hours,
			Display:     b.Slot().DisplayRange(),
			TotalAmount: b.TotalAmount,
			Status:      string(b.Status),
		}
	}

	return resp
}

func fromGround(g domain.Ground) GroundResponse {
	return GroundResponse{
		ID:           g.ID,
		Name:         g.Name,
		Location:     g.Location,
		Available:    g.Available,
		Price:        g.Price,
		PricePerHour: g.PricePerHour,
		Description:  g.Description,
	}
}
