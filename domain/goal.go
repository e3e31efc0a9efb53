package domain

const (
	SmartGoalDataKey      = "smart_goal_data"
	QuantificationDataKey = "quantification_data"

	GoalCategoryDebtReduction = "debt_reduction"
)

// SmartGoal holds the fields of smart_goal_data the quantification step reads.
type SmartGoal struct {
	Amount    float64
	TimeFrame float64
	Category  string // normalizado: minúsculas, espacios y guiones como "_"

	// Raw keeps every decoded field of smart_goal_data for policy rules.
	Raw map[string]any
}
