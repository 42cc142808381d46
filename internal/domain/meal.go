package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMealType is returned when a string does not name a meal type.
var ErrUnknownMealType = errors.New("unknown meal type")

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// DefaultMealType is used when a draft does not name one.
const DefaultMealType = MealDinner

// MealTypes lists meal types in slot order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ParseMealType accepts any casing and surrounding whitespace.
func ParseMealType(s string) (MealType, error) {
	mt := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !mt.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMealType, s)
	}
	return mt, nil
}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Label returns the capitalized display form, e.g. "Breakfast".
func (m MealType) Label() string {
	return capitalize(string(m))
}

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// Weekdays lists the planned days in order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

func (d Weekday) Label() string {
	return capitalize(string(d))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
