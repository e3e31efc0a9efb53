package service

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"goal-quantifier/domain"
)

type GoalQuantificationService struct {
	inflationRate float64
	policy        *GrowthPolicy
	logger        *zap.Logger
}

// NewGoalQuantificationService creates the quantification step. A nil
// policy exempts only goals whose category is debt_reduction.
func NewGoalQuantificationService(
	inflationRate float64,
	policy *GrowthPolicy,
	logger *zap.Logger,
) *GoalQuantificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoalQuantificationService{
		inflationRate: inflationRate,
		policy:        policy,
		logger:        logger,
	}
}

func (s *GoalQuantificationService) InflationRate() float64 {
	return s.inflationRate
}

// Quantify reads the goal from doc and returns a copy of doc with
// quantification_data replaced by a fresh result. doc is not modified.
func (s *GoalQuantificationService) Quantify(
	doc domain.Document,
) (domain.Document, domain.QuantificationResult, error) {

	goal, err := ExtractGoal(doc)
	if err != nil {
		return nil, domain.QuantificationResult{}, err
	}

	exempt, err := s.exempt(goal)
	if err != nil {
		return nil, domain.QuantificationResult{}, err
	}

	var result domain.QuantificationResult
	if exempt {
		result = exemptResult(goal.Amount, goal.TimeFrame)
	} else {
		result = ComputeFutureValue(goal.Amount, goal.TimeFrame, s.inflationRate)
	}

	if !isFinite(result.FutureValueRequired) {
		return nil, domain.QuantificationResult{}, fmt.Errorf(
			"%w: PV %v over %v years at %v",
			ErrNonFiniteResult, result.PresentValue, result.TimelineYears, result.InflationRateAssumed,
		)
	}

	updated, err := doc.With(domain.QuantificationDataKey, result)
	if err != nil {
		return nil, domain.QuantificationResult{}, err
	}

	s.logger.Debug("goal quantified",
		zap.Float64("present_value", result.PresentValue),
		zap.Float64("timeline_years", result.TimelineYears),
		zap.Float64("inflation_rate", result.InflationRateAssumed),
		zap.Float64("future_value", result.FutureValueRequired),
		zap.Bool("exempt", exempt),
		zap.Bool("replaced", doc.Has(domain.QuantificationDataKey)),
	)

	return updated, result, nil
}

// QuantifyJSON is Quantify over an encoded document.
func (s *GoalQuantificationService) QuantifyJSON(data []byte) ([]byte, error) {
	doc, err := domain.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingOrInvalidInput, err)
	}

	updated, _, err := s.Quantify(doc)
	if err != nil {
		return nil, err
	}

	return json.Marshal(updated)
}

func (s *GoalQuantificationService) exempt(goal domain.SmartGoal) (bool, error) {
	if s.policy == nil {
		return goal.Category == domain.GoalCategoryDebtReduction, nil
	}
	return s.policy.Exempt(goal)
}
