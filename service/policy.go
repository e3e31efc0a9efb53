package service

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"goal-quantifier/domain"
)

// GrowthPolicy decides whether a goal is exempt from inflation growth.
// The rule is a CEL expression over two variables: goal, the decoded
// smart_goal_data object, and category, the normalized goal category.
type GrowthPolicy struct {
	expression string
	program    cel.Program
}

func NewGrowthPolicy(expression string) (*GrowthPolicy, error) {
	if expression == "" {
		expression = DefaultExemptionRule
	}

	env, err := cel.NewEnv(
		cel.Variable("goal", cel.DynType),
		cel.Variable("category", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}

	prog, err := env.Program(ast, cel.CostLimit(policyCostLimit))
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}

	return &GrowthPolicy{expression: expression, program: prog}, nil
}

func (p *GrowthPolicy) Expression() string {
	return p.expression
}

// Exempt reports whether goal skips the growth formula.
func (p *GrowthPolicy) Exempt(goal domain.SmartGoal) (bool, error) {
	raw := goal.Raw
	if raw == nil {
		raw = map[string]any{}
	}

	out, _, err := p.program.Eval(map[string]any{
		"goal":     raw,
		"category": goal.Category,
	})
	if err != nil {
		return false, fmt.Errorf("evaluating exemption rule: %w", err)
	}

	exempt, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("exemption rule returned %T, want bool", out.Value())
	}
	return exempt, nil
}
