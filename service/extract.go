package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"goal-quantifier/domain"
)

// Category keys in lookup order.
var categoryKeys = []string{"goal_category", "category"}

// ExtractGoal reads smart_goal_data.amount and smart_goal_data.time_frame.
// Numeric strings are coerced; anything else that is not a JSON number is
// rejected with ErrMissingOrInvalidInput. Ranges are not checked.
func ExtractGoal(doc domain.Document) (domain.SmartGoal, error) {
	raw, ok := doc[domain.SmartGoalDataKey]
	if !ok {
		return domain.SmartGoal{}, invalidInput(domain.SmartGoalDataKey, "field is required")
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.SmartGoal{}, invalidInput(domain.SmartGoalDataKey, "expected an object")
	}

	amount, err := numberField(fields, "amount")
	if err != nil {
		return domain.SmartGoal{}, err
	}
	timeFrame, err := numberField(fields, "time_frame")
	if err != nil {
		return domain.SmartGoal{}, err
	}

	return domain.SmartGoal{
		Amount:    amount,
		TimeFrame: timeFrame,
		Category:  goalCategory(fields),
		Raw:       fields,
	}, nil
}

func numberField(fields map[string]any, key string) (float64, error) {
	path := domain.SmartGoalDataKey + "." + key

	v, ok := fields[key]
	if !ok {
		return 0, invalidInput(path, "field is required")
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || !isFinite(f) {
			return 0, invalidInput(path, "%q is not a number", n)
		}
		return f, nil
	default:
		return 0, invalidInput(path, "expected a number, got %s", jsonKind(v))
	}
}

func goalCategory(fields map[string]any) string {
	for _, key := range categoryKeys {
		if s, ok := fields[key].(string); ok && s != "" {
			return NormalizeCategory(s)
		}
	}
	return ""
}

// NormalizeCategory lowercases s and maps spaces and hyphens to underscores,
// so "Debt Reduction" and "debt-reduction" compare equal to "debt_reduction".
func NormalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "number"
	}
}
