package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goal-quantifier/domain"
	"goal-quantifier/repository"
)

// StateService runs the quantification step against documents held in a
// DocumentStore, keyed by pipeline session.
type StateService struct {
	store      repository.DocumentStore
	quantifier *GoalQuantificationService
	logger     *zap.Logger
	newID      func() string
}

func NewStateService(
	store repository.DocumentStore,
	quantifier *GoalQuantificationService,
	logger *zap.Logger,
) *StateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StateService{
		store:      store,
		quantifier: quantifier,
		logger:     logger,
		newID:      uuid.NewString,
	}
}

// Create stores doc under a new session id.
func (s *StateService) Create(ctx context.Context, doc domain.Document) (string, error) {
	id := s.newID()
	if err := s.store.Put(ctx, id, doc); err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	s.logger.Info("session created", zap.String("session", id))
	return id, nil
}

func (s *StateService) Get(ctx context.Context, id string) (domain.Document, error) {
	return s.store.Get(ctx, id)
}

func (s *StateService) Put(ctx context.Context, id string, doc domain.Document) error {
	return s.store.Put(ctx, id, doc)
}

// Quantify loads the session document, applies the quantification step and
// saves the result. Nothing is written if the step fails.
func (s *StateService) Quantify(ctx context.Context, id string) (domain.Document, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, result, err := s.quantifier.Quantify(doc)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, id, updated); err != nil {
		return nil, fmt.Errorf("saving session %s: %w", id, err)
	}

	s.logger.Info("session quantified",
		zap.String("session", id),
		zap.Float64("future_value", result.FutureValueRequired),
	)
	return updated, nil
}
