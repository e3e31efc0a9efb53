package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"goal-quantifier/domain"
)

const FutureValueToolName = "goal_future_value_calculator"

var ErrUnknownTool = errors.New("unknown tool")

// ToolDefinitions describes the calculator as a function tool, so a model
// only supplies arguments and never does the arithmetic itself.
func (s *GoalQuantificationService) ToolDefinitions() []domain.Tool {
	return []domain.Tool{
		{
			Type: "function",
			Function: domain.ToolFunction{
				Name: FutureValueToolName,
				Description: fmt.Sprintf(
					"Computes the inflation-adjusted future value FV = PV * (1 + i)^n. "+
						"Defaults to an inflation rate of %g.", s.inflationRate),
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"present_value": map[string]any{
							"type":        "number",
							"description": "Current goal amount (PV)",
						},
						"timeline_years": map[string]any{
							"type":        "number",
							"description": "Years until the goal is due (n)",
						},
						"inflation_rate": map[string]any{
							"type":        "number",
							"description": "Annual inflation rate as a decimal (i)",
						},
					},
					"required": []string{"present_value", "timeline_years"},
				},
			},
		},
	}
}

// ExecuteTool runs a tool call with JSON-encoded arguments.
func (s *GoalQuantificationService) ExecuteTool(
	name string,
	arguments []byte,
) (domain.QuantificationResult, error) {

	if name != FutureValueToolName {
		return domain.QuantificationResult{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	var input domain.FutureValueInput
	if err := json.Unmarshal(arguments, &input); err != nil {
		return domain.QuantificationResult{}, invalidInput("arguments", "%v", err)
	}

	return s.FutureValue(input)
}

// FutureValue runs the calculator on explicit arguments, falling back to
// the configured inflation rate.
func (s *GoalQuantificationService) FutureValue(
	input domain.FutureValueInput,
) (domain.QuantificationResult, error) {

	if input.PresentValue == nil {
		return domain.QuantificationResult{}, invalidInput("present_value", "field is required")
	}
	if input.TimelineYears == nil {
		return domain.QuantificationResult{}, invalidInput("timeline_years", "field is required")
	}

	rate := s.inflationRate
	if input.InflationRate != nil {
		rate = *input.InflationRate
	}

	result := ComputeFutureValue(*input.PresentValue, *input.TimelineYears, rate)
	if !isFinite(result.FutureValueRequired) {
		return domain.QuantificationResult{}, ErrNonFiniteResult
	}
	return result, nil
}
