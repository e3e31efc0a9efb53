package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"goal-quantifier/domain"
	"goal-quantifier/service"
)

type FutureValueHandler struct {
	service *service.GoalQuantificationService
	logger  *zap.Logger
}

func NewFutureValueHandler(service *service.GoalQuantificationService, logger *zap.Logger) *FutureValueHandler {
	return &FutureValueHandler{service: service, logger: logger}
}

func (h *FutureValueHandler) CalculateFutureValue(w http.ResponseWriter, r *http.Request) {
	var input domain.FutureValueInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.FutureValue(input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
