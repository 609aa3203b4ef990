package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CurtBryan/party-lab-sub000/pkg/types"
)

// ErrInvalidSlotLabel возвращается при некорректном формате метки слота
var ErrInvalidSlotLabel = errors.New("domain: invalid slot label, expected HH:MM-HH:MM")

// TimeSlot is a half-open interval [Start, End) of wall-clock time on a
// calendar date. Times are plain local values with no timezone attached.
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeSlotFromLabel парсит метку вида "17:00-21:00" в TimeSlot
func NewTimeSlotFromLabel(label string) (TimeSlot, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	start, err := types.NewTimeStringFromString(parts[0])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}
	end, err := types.NewTimeStringFromString(parts[1])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}
	if !start.IsBefore(end) {
		return TimeSlot{}, fmt.Errorf("%w: start must be before end in %q", ErrInvalidSlotLabel, label)
	}

	return TimeSlot{Start: start, End: end}, nil
}

// Label возвращает метку слота вида "17:00-21:00"
func (s TimeSlot) Label() string {
	return s.Start.String() + "-" + s.End.String()
}

// DurationHours возвращает длительность слота в целых часах (округление вниз)
func (s TimeSlot) DurationHours() int {
	sm, err1 := s.Start.Minutes()
	em, err2 := s.End.Minutes()
	if err1 != nil || err2 != nil || em <= sm {
		return 0
	}
	return (em - sm) / 60
}

// Overlaps reports whether two half-open intervals conflict. Shared
// boundaries do not conflict: a slot ending at 17:00 is compatible with one
// starting at 17:00, so back-to-back bookings need no gap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	cs, err := s.Start.Minutes()
	if err != nil {
		return false
	}
	ce, err := s.End.Minutes()
	if err != nil {
		return false
	}
	rs, err := other.Start.Minutes()
	if err != nil {
		return false
	}
	re, err := other.End.Minutes()
	if err != nil {
		return false
	}

	// Начало внутри чужого интервала, конец внутри чужого интервала,
	// либо полное поглощение
	return (cs >= rs && cs < re) ||
		(ce > rs && ce <= re) ||
		(cs <= rs && ce >= re)
}

// Canonical slot menu offered by the fixed-block UI path.
var (
	SlotMorning   = TimeSlot{Start: "10:00", End: "14:00"}
	SlotMidday    = TimeSlot{Start: "12:00", End: "16:00"}
	SlotAfternoon = TimeSlot{Start: "13:00", End: "17:00"}
	SlotEvening   = TimeSlot{Start: "17:00", End: "21:00"}
)

// CanonicalSlots полное меню фиксированных слотов
var CanonicalSlots = []TimeSlot{SlotMorning, SlotMidday, SlotAfternoon, SlotEvening}

// SlotMenuForDate возвращает меню фиксированных слотов на дату.
// По будням доступен только вечерний слот, в выходные - полное меню.
// Это бизнес-правило не зависит от занятости слотов.
func SlotMenuForDate(date time.Time) []TimeSlot {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		menu := make([]TimeSlot, len(CanonicalSlots))
		copy(menu, CanonicalSlots)
		return menu
	default:
		return []TimeSlot{SlotEvening}
	}
}
