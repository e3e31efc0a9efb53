package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"goal-quantifier/domain"
	"goal-quantifier/service"
)

// ToolHandler exposes the calculator as a function tool for orchestrators.
type ToolHandler struct {
	service *service.GoalQuantificationService
	agent   domain.AgentDescriptor
	logger  *zap.Logger
}

// NewToolHandler fills agent.Tools from the service.
func NewToolHandler(
	service *service.GoalQuantificationService,
	agent domain.AgentDescriptor,
	logger *zap.Logger,
) *ToolHandler {
	agent.Tools = service.ToolDefinitions()
	return &ToolHandler{service: service, agent: agent, logger: logger}
}

func (h *ToolHandler) Describe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.agent)
}

func (h *ToolHandler) Execute(w http.ResponseWriter, r *http.Request) {
	args, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.ExecuteTool(chi.URLParam(r, "name"), args)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
