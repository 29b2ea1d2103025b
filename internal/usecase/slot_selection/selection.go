package slot_selection

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// Selection набор выбранных пользователем часов на одну дату.
// Непрерывность проверяется только при подтверждении, промежуточные
// состояния с разрывами допустимы.
type Selection struct {
	slots  map[int]domain.HourSlot
	chosen map[int]struct{}
}

// New создает пустой выбор поверх списка слотов
func New(slots []domain.HourSlot) *Selection {
	s := &Selection{chosen: make(map[int]struct{})}
	s.ReplaceSlots(slots)
	return s
}

// ReplaceSlots заменяет список слотов.
// Уже выбранные часы НЕ перепроверяются по новой доступности:
// финальную проверку делает сервер при создании заказа.
func (s *Selection) ReplaceSlots(slots []domain.HourSlot) {
	s.slots = make(map[int]domain.HourSlot, len(slots))
	for _, slot := range slots {
		s.slots[slot.HourIndex] = slot
	}
}

// Toggle добавляет час в выбор или убирает его.
// Клик по недоступному или неизвестному часу ничего не меняет.
// Возвращает true, если выбор изменился.
func (s *Selection) Toggle(hourIndex int) bool {
	slot, ok := s.slots[hourIndex]
	if !ok || !slot.Enabled {
		return false
	}

	if _, chosen := s.chosen[hourIndex]; chosen {
		delete(s.chosen, hourIndex)
	} else {
		s.chosen[hourIndex] = struct{}{}
	}
	return true
}

// IsChosen проверяет, выбран ли час
func (s *Selection) IsChosen(hourIndex int) bool {
	_, ok := s.chosen[hourIndex]
	return ok
}

// Len количество выбранных часов
func (s *Selection) Len() int {
	return len(s.chosen)
}

// Chosen возвращает выбранные часы по возрастанию
func (s *Selection) Chosen() []int {
	hours := make([]int, 0, len(s.chosen))
	for h := range s.chosen {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// IsContiguous true для пустого выбора, одного часа или непрерывной серии часов
func (s *Selection) IsContiguous() bool {
	return IsContiguous(s.Chosen())
}

// Confirm проверяет выбор и возвращает нормализованный результат.
// Сам выбор не очищается, это делает визард при переходе между шагами.
func (s *Selection) Confirm() (domain.FinalizedSlot, error) {
	hours := s.Chosen()

	if len(hours) == 0 {
		return domain.FinalizedSlot{}, ErrNoSlotsChosen
	}

	if !IsContiguous(hours) {
		return domain.FinalizedSlot{}, fmt.Errorf("%w: %v", ErrNonConsecutive, hours)
	}

	return domain.FinalizedSlot{
		StartHour: hours[0],
		Hours:     hours,
	}, nil
}

// Reset очищает выбор, список слотов сохраняется
func (s *Selection) Reset() {
	s.chosen = make(map[int]struct{})
}

// IsContiguous проверяет, что отсортированные часы идут подряд с шагом 1
func IsContiguous(sortedHours []int) bool {
	for i := 1; i < len(sortedHours); i++ {
		if sortedHours[i]-sortedHours[i-1] != 1 {
			return false
		}
	}
	return true
}

// Normalize сортирует часы, убирает повторы и проверяет непрерывность.
// Используется там, где часы приходят списком, а не кликами (офлайн-бронирования).
func Normalize(hours []int) (domain.FinalizedSlot, error) {
	seen := make(map[int]struct{}, len(hours))
	unique := make([]int, 0, len(hours))
	for _, h := range hours {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, h)
	}
	sort.Ints(unique)

	if len(unique) == 0 {
		return domain.FinalizedSlot{}, ErrNoSlotsChosen
	}
	if !IsContiguous(unique) {
		return domain.FinalizedSlot{}, fmt.Errorf("%w: %v", ErrNonConsecutive, unique)
	}

	return domain.FinalizedSlot{StartHour: unique[0], Hours: unique}, nil
}
