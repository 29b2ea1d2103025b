package slot_selection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

func fullDay() []domain.HourSlot {
	slots := make([]domain.HourSlot, domain.HoursPerDay)
	for h := range slots {
		slots[h] = domain.HourSlot{
			HourIndex: h,
			Label:     fmt.Sprintf("%s to %s", domain.HourLabel(h), domain.HourLabel(h+1)),
			Enabled:   true,
		}
	}
	return slots
}

func selectionOf(t *testing.T, hours ...int) *Selection {
	t.Helper()
	s := New(fullDay())
	for _, h := range hours {
		require.True(t, s.Toggle(h), "toggle %d", h)
	}
	return s
}

func TestIsContiguous(t *testing.T) {
	tests := []struct {
		name  string
		hours []int
		want  bool
	}{
		{"empty", nil, true},
		{"single", []int{5}, true},
		{"run", []int{5, 6, 7}, true},
		{"gap", []int{5, 7}, false},
		{"unordered run", []int{7, 5, 6}, true},
		{"run with trailing gap", []int{1, 2, 3, 5}, false},
		{"whole day", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := selectionOf(t, tt.hours...)
			before := s.Chosen()

			assert.Equal(t, tt.want, s.IsContiguous())
			assert.Equal(t, before, s.Chosen(), "query must not mutate selection")
		})
	}
}

func TestIsContiguous_AllPairs(t *testing.T) {
	for a := 0; a < domain.HoursPerDay; a++ {
		for b := a + 1; b < domain.HoursPerDay; b++ {
			s := selectionOf(t, a, b)
			assert.Equal(t, b-a == 1, s.IsContiguous(), "pair {%d,%d}", a, b)
		}
	}
}

func TestConfirm(t *testing.T) {
	t.Run("empty selection", func(t *testing.T) {
		s := New(fullDay())

		_, err := s.Confirm()
		assert.ErrorIs(t, err, ErrNoSlotsChosen)
	})

	t.Run("non consecutive", func(t *testing.T) {
		s := selectionOf(t, 3, 4, 6)

		_, err := s.Confirm()
		assert.ErrorIs(t, err, ErrNonConsecutive)
		assert.NotErrorIs(t, err, ErrNoSlotsChosen)
		assert.Equal(t, []int{3, 4, 6}, s.Chosen())
	})

	t.Run("single hour", func(t *testing.T) {
		s := selectionOf(t, 9)

		slot, err := s.Confirm()
		require.NoError(t, err)
		assert.Equal(t, 9, slot.StartHour)
		assert.Equal(t, []int{9}, slot.Hours)
		assert.Equal(t, 10, slot.EndHour())
	})

	t.Run("range picked out of order", func(t *testing.T) {
		s := selectionOf(t, 16, 14, 15)

		slot, err := s.Confirm()
		require.NoError(t, err)
		assert.Equal(t, domain.FinalizedSlot{StartHour: 14, Hours: []int{14, 15, 16}}, slot)
	})

	t.Run("confirm keeps selection", func(t *testing.T) {
		s := selectionOf(t, 12, 13)

		_, err := s.Confirm()
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
	})
}

func TestToggle_DisabledSlotIsNoop(t *testing.T) {
	slots := fullDay()
	slots[14].Enabled = false
	s := New(slots)

	assert.False(t, s.Toggle(14))
	assert.False(t, s.IsChosen(14))
	assert.Zero(t, s.Len())

	assert.False(t, s.Toggle(30), "unknown hour")
	assert.Zero(t, s.Len())
}

func TestToggle_TwiceRestoresState(t *testing.T) {
	priors := [][]int{nil, {10}, {9}, {3, 4, 6}, {9, 10, 11}, {0, 23}}

	for _, prior := range priors {
		s := selectionOf(t, prior...)
		before := s.Chosen()

		s.Toggle(10)
		s.Toggle(10)

		assert.Equal(t, before, s.Chosen(), "prior %v", prior)
	}
}

func TestToggle_MiddleHourCanBeReselected(t *testing.T) {
	s := selectionOf(t, 10, 11, 12)

	s.Toggle(11)
	assert.False(t, s.IsContiguous())

	s.Toggle(11)
	slot, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, slot.Hours)
}

func TestReplaceSlots_KeepsPendingChoice(t *testing.T) {
	s := selectionOf(t, 18, 19)

	refreshed := fullDay()
	refreshed[19].Enabled = false
	s.ReplaceSlots(refreshed)

	assert.True(t, s.IsChosen(19))
	slot, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, []int{18, 19}, slot.Hours)

	assert.False(t, s.Toggle(19), "disabled hour can no longer be toggled off")
}

func TestReset(t *testing.T) {
	s := selectionOf(t, 1, 2)
	s.Reset()

	assert.Zero(t, s.Len())
	assert.True(t, s.Toggle(1), "slots survive reset")
}

func TestNormalize(t *testing.T) {
	slot, err := Normalize([]int{8, 7, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, domain.FinalizedSlot{StartHour: 7, Hours: []int{7, 8, 9}}, slot)

	_, err = Normalize(nil)
	assert.ErrorIs(t, err, ErrNoSlotsChosen)

	_, err = Normalize([]int{1, 3})
	assert.ErrorIs(t, err, ErrNonConsecutive)
}
