package cli

import (
	"github.com/alexanderramin/larder/internal/domain"
	"github.com/spf13/pflag"
)

// mealTypeValue is a pflag.Value that rejects unknown meal types at parse
// time instead of deep inside a command.
type mealTypeValue struct {
	target *domain.MealType
}

var _ pflag.Value = (*mealTypeValue)(nil)

func newMealTypeValue(target *domain.MealType) *mealTypeValue {
	return &mealTypeValue{target: target}
}

func (v *mealTypeValue) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v *mealTypeValue) Set(s string) error {
	mt, err := domain.ParseMealType(s)
	if err != nil {
		return err
	}
	*v.target = mt
	return nil
}

func (v *mealTypeValue) Type() string { return "meal" }

func addMealFlag(fs *pflag.FlagSet, target *domain.MealType, usage string) {
	fs.Var(newMealTypeValue(target), "meal", usage+" (breakfast, lunch, dinner, snack)")
}
