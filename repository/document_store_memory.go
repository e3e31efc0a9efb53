package repository

import (
	"context"
	"fmt"
	"sync"

	"goal-quantifier/domain"
)

// DocumentStoreMemory is an in-memory implementation of DocumentStore.
type DocumentStoreMemory struct {
	mu   sync.RWMutex
	data map[string]domain.Document
}

// NewDocumentStoreMemory creates a new in-memory document store.
func NewDocumentStoreMemory() *DocumentStoreMemory {
	return &DocumentStoreMemory{
		data: make(map[string]domain.Document),
	}
}

// Get returns a copy of the stored document.
func (r *DocumentStoreMemory) Get(_ context.Context, id string) (domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.data[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	return doc.Clone(), nil
}

// Put stores a copy of doc, replacing any previous version.
func (r *DocumentStoreMemory) Put(_ context.Context, id string, doc domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[id] = doc.Clone()
	return nil
}

func (r *DocumentStoreMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
