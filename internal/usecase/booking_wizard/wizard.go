package booking_wizard

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/usecase/slot_selection"
	"github.com/m04kA/SMC-TurfBooking/internal/validation"
)

// state данные визарда.
// Поле более позднего шага заполнено, только если заполнены поля всех предыдущих.
type state struct {
	step       domain.Step
	generation uint64 // меняется при каждом переходе, отсекает запоздавшие ответы
	loading    bool

	calendar  domain.DateCalendar
	date      string
	slots     []domain.HourSlot
	selection *slot_selection.Selection
	finalized *domain.FinalizedSlot
	grounds   []domain.Ground
	ground    *domain.Ground

	details     domain.CustomerDetails
	fieldErrors validation.FieldErrors
	order       *domain.PaymentOrder
	pending     *domain.Booking
	paying      bool // запрос к API оплаты в процессе

	confirmation *domain.Booking

	fetchErr error
	message  string
}

// loader загрузка данных шага, выполняется без блокировки
type loader func(ctx context.Context) error

// Wizard визард бронирования: дата -> часы -> площадка -> контакты и оплата -> подтверждение
type Wizard struct {
	mu sync.Mutex
	st state

	id           string
	api          BookingAPI
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// New создает визард на шаге выбора даты
func New(id string, api BookingAPI, metrics Metrics, logger Logger) *Wizard {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Wizard{
		st:           state{step: domain.StepDate},
		id:           id,
		api:          api,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider подменяет источник времени (для тестирования)
func (w *Wizard) SetTimeProvider(tp TimeProvider) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timeProvider = tp
}

// ID идентификатор сессии визарда
func (w *Wizard) ID() string {
	return w.id
}

// Step текущий шаг
func (w *Wizard) Step() domain.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.st.step
}

// View строит модель отображения текущего состояния
func (w *Wizard) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return render(&w.st, w.timeProvider.Now())
}

// Start загружает календарь доступных дат
func (w *Wizard) Start(ctx context.Context) error {
	return w.do(ctx, func() (loader, error) {
		if w.st.step != domain.StepDate {
			return nil, fmt.Errorf("%w: start at step %s", ErrWrongStep, w.st.step)
		}
		return w.prepareLoad(), nil
	})
}

// ChooseDate выбирает дату из календаря и загружает часы на нее
func (w *Wizard) ChooseDate(ctx context.Context, date string) error {
	return w.do(ctx, func() (loader, error) {
		if w.st.step != domain.StepDate {
			return nil, fmt.Errorf("%w: choose date at step %s", ErrWrongStep, w.st.step)
		}

		d, ok := w.st.calendar.Lookup(date)
		if !ok || !d.Enabled {
			w.st.message = msgDateNotAvailable
			w.logger.Warn("ChooseDate: session %s: date %s is not available", w.id, date)
			return nil, fmt.Errorf("%w: %s", ErrDateNotAvailable, date)
		}

		w.transition(domain.StepSlot)
		w.st.date = date
		w.st.slots = nil
		w.st.selection = nil
		w.st.finalized = nil

		return w.prepareLoad(), nil
	})
}

// ToggleSlot добавляет час в выбор или убирает его.
// Недоступные часы игнорируются без ошибки.
func (w *Wizard) ToggleSlot(hour int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.st.step != domain.StepSlot {
		return fmt.Errorf("%w: toggle slot at step %s", ErrWrongStep, w.st.step)
	}
	if w.st.selection == nil {
		return ErrSlotsNotLoaded
	}

	if !w.st.selection.Toggle(hour) {
		w.logger.Info("ToggleSlot: session %s: hour %d is not selectable", w.id, hour)
	}
	w.st.message = ""
	return nil
}

// ConfirmSlots подтверждает выбор часов и загружает площадки
func (w *Wizard) ConfirmSlots(ctx context.Context) error {
	return w.do(ctx, func() (loader, error) {
		if w.st.step != domain.StepSlot {
			return nil, fmt.Errorf("%w: confirm slots at step %s", ErrWrongStep, w.st.step)
		}
		if w.st.selection == nil {
			return nil, ErrSlotsNotLoaded
		}

		slot, err := w.st.selection.Confirm()
		if err != nil {
			w.st.message = selectionMessage(err)
			w.logger.Warn("ConfirmSlots: session %s: %v", w.id, err)
			return nil, err
		}

		w.transition(domain.StepGround)
		w.st.finalized = &slot
		w.st.grounds = nil
		w.st.ground = nil

		w.logger.Info("ConfirmSlots: session %s: date=%s, hours=%v", w.id, w.st.date, slot.Hours)
		return w.prepareLoad(), nil
	})
}

// ChooseGround выбирает площадку из полученного списка
func (w *Wizard) ChooseGround(groundID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.st.step != domain.StepGround {
		return fmt.Errorf("%w: choose ground at step %s", ErrWrongStep, w.st.step)
	}

	ground, ok := domain.FindGround(w.st.grounds, groundID)
	if !ok {
		w.st.message = msgGroundNotFound
		w.logger.Warn("ChooseGround: session %s: ground %s not in list", w.id, groundID)
		return fmt.Errorf("%w: %s", ErrGroundNotFound, groundID)
	}
	if !ground.Available {
		w.st.message = msgGroundNotAvailable
		w.logger.Warn("ChooseGround: session %s: ground %s is not available", w.id, groundID)
		return fmt.Errorf("%w: %s", ErrGroundNotAvailable, groundID)
	}

	w.transition(domain.StepDetails)
	w.st.ground = &ground
	w.clearDetails()
	return nil
}

// Back возвращает визард на предыдущий шаг.
// Поля текущего и последующих шагов сбрасываются, данные предыдущего шага загружаются заново.
func (w *Wizard) Back(ctx context.Context) error {
	return w.do(ctx, func() (loader, error) {
		if w.st.paying {
			return nil, ErrPaymentInProgress
		}

		switch w.st.step {
		case domain.StepSlot:
			w.transition(domain.StepDate)
			w.st.date = ""
			w.st.slots = nil
			w.st.selection = nil
			w.st.finalized = nil
			return w.prepareLoad(), nil

		case domain.StepGround:
			w.transition(domain.StepSlot)
			w.st.ground = nil
			w.st.grounds = nil
			w.st.finalized = nil
			if w.st.selection != nil {
				w.st.selection.Reset()
			}
			return w.prepareLoad(), nil

		case domain.StepDetails:
			var abandoned string
			if w.st.order != nil {
				abandoned = w.st.order.BookingID
			}

			w.transition(domain.StepGround)
			w.st.ground = nil
			w.clearDetails()

			load := w.prepareLoad()
			if abandoned == "" {
				return load, nil
			}
			return func(ctx context.Context) error {
				w.releaseBooking(ctx, abandoned)
				return load(ctx)
			}, nil

		default:
			return nil, fmt.Errorf("%w: back at step %s", ErrWrongStep, w.st.step)
		}
	})
}

// BookAnother начинает новое бронирование после подтверждения
func (w *Wizard) BookAnother(ctx context.Context) error {
	return w.do(ctx, func() (loader, error) {
		if w.st.step != domain.StepConfirmed {
			return nil, fmt.Errorf("%w: book another at step %s", ErrWrongStep, w.st.step)
		}

		w.transition(domain.StepDate)
		w.st = state{step: domain.StepDate, generation: w.st.generation}
		return w.prepareLoad(), nil
	})
}

// Retry повторно загружает данные текущего шага.
// На шаге часов уже выбранные часы сохраняются и не перепроверяются по новой доступности.
func (w *Wizard) Retry(ctx context.Context) error {
	return w.do(ctx, func() (loader, error) {
		switch w.st.step {
		case domain.StepDate, domain.StepSlot, domain.StepGround:
		default:
			return nil, fmt.Errorf("%w: step %s", ErrNothingToRetry, w.st.step)
		}

		w.st.generation++
		return w.prepareLoad(), nil
	})
}

// do выполняет мутацию под блокировкой, затем загрузку без нее
func (w *Wizard) do(ctx context.Context, fn func() (loader, error)) error {
	w.mu.Lock()
	load, err := fn()
	w.mu.Unlock()

	if err != nil || load == nil {
		return err
	}
	return load(ctx)
}

// transition меняет шаг. Вызывается под блокировкой.
func (w *Wizard) transition(to domain.Step) {
	from := w.st.step
	w.st.step = to
	w.st.generation++
	w.st.loading = false
	w.st.fetchErr = nil
	w.st.message = ""

	w.metrics.RecordTransition(from.String(), to.String())
	w.logger.Info("Wizard: session %s: %s -> %s", w.id, from, to)
}

func (w *Wizard) clearDetails() {
	w.st.details = domain.CustomerDetails{}
	w.st.fieldErrors = nil
	w.st.order = nil
	w.st.pending = nil
}

// prepareLoad готовит загрузку данных текущего шага. Вызывается под блокировкой.
func (w *Wizard) prepareLoad() loader {
	gen := w.st.generation
	w.st.loading = true
	w.st.fetchErr = nil

	switch w.st.step {
	case domain.StepDate:
		return func(ctx context.Context) error {
			calendar, err := w.api.GetAvailableDates(ctx)
			return w.applyLoad(gen, "GetAvailableDates", err, func() {
				w.st.calendar = calendar
			})
		}

	case domain.StepSlot:
		date := w.st.date
		return func(ctx context.Context) error {
			slots, err := w.api.GetAvailableSlots(ctx, date)
			return w.applyLoad(gen, "GetAvailableSlots", err, func() {
				w.st.slots = slots
				if w.st.selection == nil {
					w.st.selection = slot_selection.New(slots)
				} else {
					w.st.selection.ReplaceSlots(slots)
				}
			})
		}

	case domain.StepGround:
		date := w.st.date
		hours := append([]int(nil), w.st.finalized.Hours...)
		return func(ctx context.Context) error {
			grounds, err := w.api.GetAvailableGrounds(ctx, date, hours)
			return w.applyLoad(gen, "GetAvailableGrounds", err, func() {
				w.st.grounds = grounds
			})
		}

	default:
		w.st.loading = false
		return nil
	}
}

// applyLoad применяет результат загрузки, если визард все еще на том же шаге
func (w *Wizard) applyLoad(gen uint64, operation string, err error, apply func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.st.generation != gen {
		w.logger.Info("%s: session %s moved on, dropping late response", operation, w.id)
		return nil
	}

	w.st.loading = false
	if err != nil {
		w.st.fetchErr = err
		w.st.message = msgFetchFailed
		w.logger.Error("%s: session %s: %v", operation, w.id, err)
		return fmt.Errorf("%w: %s: %v", ErrFetchFailed, operation, err)
	}

	apply()
	return nil
}

// releaseBooking освобождает слот брошенного неоплаченного бронирования
func (w *Wizard) releaseBooking(ctx context.Context, bookingID string) {
	w.reportFailure(ctx, bookingID, "checkout abandoned", true)
	w.logger.Info("Back: session %s: released booking %s", w.id, bookingID)
}
