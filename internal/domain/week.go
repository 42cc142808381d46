package domain

// DayMeals holds one optional recipe per meal slot.
type DayMeals struct {
	Breakfast *Recipe `json:"breakfast"`
	Lunch     *Recipe `json:"lunch"`
	Dinner    *Recipe `json:"dinner"`
	Snack     *Recipe `json:"snack"`
}

// Slot returns the recipe planned for the meal type, or nil.
func (d DayMeals) Slot(mt MealType) *Recipe {
	switch mt {
	case MealBreakfast:
		return d.Breakfast
	case MealLunch:
		return d.Lunch
	case MealDinner:
		return d.Dinner
	case MealSnack:
		return d.Snack
	}
	return nil
}

// SetSlot assigns r to the meal slot. Unknown meal types are ignored.
func (d *DayMeals) SetSlot(mt MealType, r *Recipe) {
	switch mt {
	case MealBreakfast:
		d.Breakfast = r
	case MealLunch:
		d.Lunch = r
	case MealDinner:
		d.Dinner = r
	case MealSnack:
		d.Snack = r
	}
}

// WeekPlan maps each weekday to its meals. A plan is always replaced as a
// whole; nothing edits single slots after it is built.
type WeekPlan map[Weekday]DayMeals

// NewWeekPlan returns a plan with every weekday present and every slot empty.
func NewWeekPlan() WeekPlan {
	p := make(WeekPlan, len(Weekdays))
	for _, d := range Weekdays {
		p[d] = DayMeals{}
	}
	return p
}

// FilledSlots counts non-empty slots across the week.
func (p WeekPlan) FilledSlots() int {
	n := 0
	for _, d := range Weekdays {
		meals := p[d]
		for _, mt := range MealTypes {
			if meals.Slot(mt) != nil {
				n++
			}
		}
	}
	return n
}
