package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"goal-quantifier/service"
)

type StateHandler struct {
	service *service.StateService
	logger  *zap.Logger
}

func NewStateHandler(service *service.StateService, logger *zap.Logger) *StateHandler {
	return &StateHandler{service: service, logger: logger}
}

type createSessionResponse struct {
	ID string `json:"id"`
}

func (h *StateHandler) Create(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.Create(r.Context(), doc)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/fso/"+id)
	writeJSON(w, h.logger, http.StatusCreated, createSessionResponse{ID: id})
}

func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, doc)
}

func (h *StateHandler) Put(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Put(r.Context(), chi.URLParam(r, "id"), doc); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StateHandler) Quantify(w http.ResponseWriter, r *http.Request) {
	updated, err := h.service.Quantify(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, updated)
}
