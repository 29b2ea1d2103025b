package booking_wizard

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// render отображает состояние визарда в View.
// Функция чистая: результат не разделяет память с состоянием.
func render(st *state, now time.Time) View {
	v := View{
		Step:      st.step,
		CanGoBack: st.step.CanGoBack() && !st.paying,
		Loading:   st.loading,
		Date:      st.date,
		Message:   st.message,
	}
	if st.fetchErr != nil {
		v.FetchError = msgFetchFailed
	}

	switch st.step {
	case domain.StepDate:
		v.Calendar = copyCalendar(st.calendar)

	case domain.StepSlot:
		v.Slots = slotViews(st)
		if st.selection != nil {
			v.ChosenHours = st.selection.Chosen()
			v.SelectionContiguous = st.selection.IsContiguous()
		}

	case domain.StepGround:
		v.FinalizedSlot = copySlot(st.finalized)
		v.Grounds = append([]domain.Ground(nil), st.grounds...)

	case domain.StepDetails:
		v.FinalizedSlot = copySlot(st.finalized)
		v.Ground = copyGround(st.ground)
		v.Details = st.details
		if len(st.fieldErrors) > 0 {
			v.FieldErrors = make(map[string]string, len(st.fieldErrors))
			for k, msg := range st.fieldErrors {
				v.FieldErrors[k] = msg
			}
		}
		if st.order != nil && !st.order.IsExpired(now) {
			v.Checkout = buildCheckout(st)
		}

	case domain.StepConfirmed:
		v.FinalizedSlot = copySlot(st.finalized)
		v.Ground = copyGround(st.ground)
		if st.confirmation != nil {
			c := *st.confirmation
			c.Hours = append([]int(nil), c.Hours...)
			v.Confirmation = &c
		}
	}

	return v
}

func slotViews(st *state) []SlotView {
	if st.slots == nil {
		return nil
	}
	views := make([]SlotView, len(st.slots))
	for i, s := range st.slots {
		views[i] = SlotView{
			Hour:    s.HourIndex,
			Label:   s.Label,
			Enabled: s.Enabled,
			Chosen:  st.selection != nil && st.selection.IsChosen(s.HourIndex),
		}
	}
	return views
}

func buildCheckout(st *state) *Checkout {
	o := st.order
	c := &Checkout{
		KeyID:     o.KeyID,
		OrderID:   o.OrderID,
		BookingID: o.BookingID,
		Amount:    o.Amount,
		Currency:  o.Currency,
		Name:      st.details.Name,
		Email:     st.details.Email,
		Phone:     st.details.Phone,
		ExpiresAt: o.ExpiresAt(),
	}
	if st.ground != nil && st.finalized != nil {
		c.Description = fmt.Sprintf("%s, %s, %s", st.ground.Name, st.date, st.finalized.DisplayRange())
	}
	return c
}

func copyCalendar(c domain.DateCalendar) domain.DateCalendar {
	if c == nil {
		return nil
	}
	out := make(domain.DateCalendar, len(c))
	for month, dates := range c {
		out[month] = append([]domain.AvailableDate(nil), dates...)
	}
	return out
}

func copySlot(s *domain.FinalizedSlot) *domain.FinalizedSlot {
	if s == nil {
		return nil
	}
	return &domain.FinalizedSlot{StartHour: s.StartHour, Hours: append([]int(nil), s.Hours...)}
}

func copyGround(g *domain.Ground) *domain.Ground {
	if g == nil {
		return nil
	}
	c := *g
	return &c
}
