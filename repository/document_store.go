package repository

import (
	"context"
	"errors"

	"goal-quantifier/domain"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore keeps Financial State Objects by session id. It belongs to
// the surrounding pipeline; the quantification step only reads and writes
// whole documents through it.
type DocumentStore interface {
	Get(ctx context.Context, id string) (domain.Document, error)
	Put(ctx context.Context, id string, doc domain.Document) error
}
