package plan

import "fmt"

// MealTemplate is the suggestion set for one diet preference. Breakfast,
// Lunch and Dinner are format strings taking the per-meal kcal estimate
// as their single %d verb; Snack is used as-is.
type MealTemplate struct {
	Style     string
	Breakfast string
	Lunch     string
	Dinner    string
	Snack     string
}

// Meal is one rendered suggestion.
type Meal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MealPlan is the rule-based meal suggestion block shown next to a plan.
type MealPlan struct {
	Label       string `json:"label"`
	Style       string `json:"style"`
	PerMealKcal int    `json:"per_meal_kcal"`
	Meals       []Meal `json:"meals"`
}

// StandardGoalLabels are the headings used for each goal.
func StandardGoalLabels() map[Goal]string {
	return map[Goal]string{
		Lose:     "Fat loss–focused",
		Maintain: "Maintenance",
		Gain:     "Muscle gain–focused",
	}
}

// StandardMealTemplates are the suggestion sets per diet preference.
func StandardMealTemplates() map[DietPreference]MealTemplate {
	return map[DietPreference]MealTemplate{
		LowCarb: {
			Style:     "Lower carb, higher fat",
			Breakfast: "Egg scramble with veggies, avocado, and a side of berries (~%d kcal).",
			Lunch:     "Grilled chicken salad with olive oil dressing, nuts, and mixed greens (~%d kcal).",
			Dinner:    "Salmon or lean steak, roasted non-starchy veggies, and a small portion of quinoa (~%d kcal).",
			Snack:     "Greek yogurt or cottage cheese with nuts, or a protein shake.",
		},
		HighCarb: {
			Style:     "Higher carb, lower fat",
			Breakfast: "Overnight oats with Greek yogurt, fruit, and a scoop of protein (~%d kcal).",
			Lunch:     "Turkey or tofu grain bowl with rice, beans, veggies, and salsa (~%d kcal).",
			Dinner:    "Stir-fry with lean protein, lots of vegetables, and rice or noodles (~%d kcal).",
			Snack:     "Fruit + protein (e.g., apple with cheese, or banana + protein shake).",
		},
		Balanced: {
			Style:     "Balanced carbs and fats",
			Breakfast: "Greek yogurt parfait with fruit, nuts, and a bit of granola (~%d kcal).",
			Lunch:     "Whole-grain wrap with chicken or beans, veggies, and hummus (~%d kcal).",
			Dinner:    "Baked fish or chicken, roasted potatoes, and mixed vegetables (~%d kcal).",
			Snack:     "Protein-focused snack: yogurt, cottage cheese, or a small protein shake.",
		},
	}
}

// BuildMealPlan picks the suggestion set for goal and pref and fills in the
// per-meal estimate (calories × MealShare, truncated). Unknown goals get the
// "General" label; unknown preferences use the default template.
func (p *Planner) BuildMealPlan(goal Goal, pref DietPreference, calories int) MealPlan {
	perMeal := int(float64(calories) * p.cfg.MealShare)

	label, ok := p.cfg.GoalLabels[Goal(lower(string(goal)))]
	if !ok {
		label = "General"
	}
	tmpl, ok := p.cfg.MealTemplates[DietPreference(lower(string(pref)))]
	if !ok {
		tmpl = p.cfg.MealTemplates[p.cfg.DefaultMealKey]
	}

	return MealPlan{
		Label:       label,
		Style:       tmpl.Style,
		PerMealKcal: perMeal,
		Meals: []Meal{
			{Name: "Breakfast", Description: fmt.Sprintf(tmpl.Breakfast, perMeal)},
			{Name: "Lunch", Description: fmt.Sprintf(tmpl.Lunch, perMeal)},
			{Name: "Dinner", Description: fmt.Sprintf(tmpl.Dinner, perMeal)},
			{Name: "Snack / Flex", Description: tmpl.Snack},
		},
	}
}
