package contracts

import (
	"context"

	"cleanbook/pkg/model"
)

// DocumentStore inserts records into named collections and assigns the
// identifier and timestamps.
type DocumentStore interface {
	Create(ctx context.Context, collection string, fields map[string]any) (model.Document, error)
}

// StoreInspector is the read-only surface used by diagnostics and readiness.
type StoreInspector interface {
	DatabaseName() string
	ListCollectionNames(ctx context.Context, limit int) ([]string, error)
	Ping(ctx context.Context) error
}

type Store interface {
	DocumentStore
	StoreInspector
}
