package repository

import (
	"context"

	bookingserrors "cleanbook/internal/bookings/errors"
	"cleanbook/pkg/contracts"
	"cleanbook/pkg/model"
)

type BookingRepository interface {
	Create(ctx context.Context, payload *model.BookingPayload) (model.Document, error)
}

type storeBookingRepository struct {
	store contracts.DocumentStore
}

// NewBookingRepository writes booking requests to the bookingrequest
// collection. A nil store is allowed; every write then fails with
// ErrStoreNotInitialized.
func NewBookingRepository(store contracts.DocumentStore) BookingRepository {
	return &storeBookingRepository{store: store}
}

func (r *storeBookingRepository) Create(ctx context.Context, payload *model.BookingPayload) (model.Document, error) {
	if r.store == nil {
		return nil, bookingserrors.ErrStoreNotInitialized
	}
	if payload == nil {
		return nil, bookingserrors.ErrEmptyPayload
	}
	return r.store.Create(ctx, model.BookingCollection, payload.Fields())
}
