package slot_selection

import "errors"

var (
	// ErrNoSlotsChosen возвращается при подтверждении пустого выбора
	ErrNoSlotsChosen = errors.New("slot_selection: no slots chosen")

	// ErrNonConsecutive возвращается, когда выбранные часы не образуют непрерывный интервал
	ErrNonConsecutive = errors.New("slot_selection: selected hours are not consecutive")
)
