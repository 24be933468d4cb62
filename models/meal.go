package models

import (
	"fmt"
	"time"
)

// MealItem is the nutrition snapshot stored inside a meal log document.
type MealItem struct {
	Name     string
	Calories float64
}

// One meal log document under users/{uid}/mealLogs
type MealLog struct {
	Date          string
	Timestamp     time.Time
	Items         []MealItem
	TotalCalories float64
}

func NewMealLog(at time.Time, items []MealItem) MealLog {
	var total float64
	for _, it := range items {
		total += it.Calories
	}
	return MealLog{
		Date:          at.Format("2006-01-02"),
		Timestamp:     at,
		Items:         items,
		TotalCalories: total,
	}
}

// DummyMealPlan builds the seed data: for today and the 4 days before it,
// three meals at 08:00, 13:00 and 19:00 UTC from fixed catalog slots.
func DummyMealPlan(today time.Time, catalog []Food) ([]MealLog, error) {
	const maxSlot = 18
	if len(catalog) <= maxSlot {
		return nil, fmt.Errorf("catalog too small: need at least %d foods, got %d", maxSlot+1, len(catalog))
	}

	item := func(slot int) MealItem {
		f := catalog[slot]
		return MealItem{Name: f.Name, Calories: f.Calories()}
	}

	logs := make([]MealLog, 0, 15)
	for i := 0; i < 5; i++ {
		day := today.AddDate(0, 0, -i)
		at := func(hour int) time.Time {
			return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
		}
		logs = append(logs,
			NewMealLog(at(8), []MealItem{item(0), item(18)}), // ayam + nasi
			NewMealLog(at(13), []MealItem{item(1), item(9)}), // bakso + kerupuk
			NewMealLog(at(19), []MealItem{item(14)}),         // mie goreng
		)
	}
	return logs, nil
}
