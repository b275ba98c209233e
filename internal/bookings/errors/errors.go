package errors

import "errors"

var (
	ErrStoreNotInitialized = errors.New("database not initialized")

	ErrEmptyPayload = errors.New("booking payload cannot be nil")
)
