package model

import "time"

// MealLogEntry records that a recipe was consumed. Title, calories and
// macros are snapshots taken at logging time so history stays readable
// and stable even after the recipe is edited or deleted. Entries are
// append-only and never mutated.
type MealLogEntry struct {
	ID          string    `json:"id"`
	RecipeID    string    `json:"recipe_id"`
	RecipeTitle string    `json:"recipe_title"`
	Servings    int       `json:"servings"`
	Calories    int       `json:"calories"`
	Macros      Macros    `json:"macros"`
	Date        string    `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

// DailyNutrition is the aggregate for one calendar day.
type DailyNutrition struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
	Meals    int    `json:"meals"`
}

// dateLayout is the calendar-day key format used to bucket entries.
const dateLayout = "2006-01-02"

// TodayDateString returns the local calendar date as a stable key.
// Entries logged at any time of the same local day share a key.
func TodayDateString() string {
	return time.Now().Format(dateLayout)
}

// DateString formats an arbitrary instant with the same day-key layout.
func DateString(t time.Time) string {
	return t.Format(dateLayout)
}
