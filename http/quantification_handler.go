package http

import (
	"net/http"

	"go.uber.org/zap"

	"goal-quantifier/service"
)

// QuantificationHandler applies the quantification step to a document
// carried in the request body and returns the updated document.
type QuantificationHandler struct {
	service *service.GoalQuantificationService
	logger  *zap.Logger
}

func NewQuantificationHandler(service *service.GoalQuantificationService, logger *zap.Logger) *QuantificationHandler {
	return &QuantificationHandler{service: service, logger: logger}
}

func (h *QuantificationHandler) Quantify(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, _, err := h.service.Quantify(doc)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, updated)
}
