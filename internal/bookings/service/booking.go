package service

import (
	"context"

	"cleanbook/internal/bookings/events"
	"cleanbook/internal/bookings/repository"
	apperrors "cleanbook/pkg/errors"
	"cleanbook/pkg/logger"
	"cleanbook/pkg/middleware"
	"cleanbook/pkg/model"
)

type BookingService interface {
	Submit(ctx context.Context, payload *model.BookingPayload) (model.Document, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher events.Publisher
	log       *logger.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Submit stores a validated booking request. The write is attempted exactly
// once; identical submissions produce separate documents. Event publishing
// happens after the write and never changes the outcome.
func (s *bookingService) Submit(ctx context.Context, payload *model.BookingPayload) (model.Document, error) {
	requestID := middleware.RequestIDFromContext(ctx)

	doc, err := s.repo.Create(ctx, payload)
	if err != nil {
		s.log.Error("Failed to store booking request",
			"request_id", requestID,
			"collection", model.BookingCollection,
			"error", err,
		)
		return nil, apperrors.Storage(err)
	}

	s.log.Info("Booking request stored",
		"request_id", requestID,
		"id", doc.ID(),
		"service_type", doc["service_type"],
		"created_at", doc.CreatedAt(),
	)

	if err := s.publisher.BookingRequested(ctx, doc); err != nil {
		s.log.Warn("Failed to publish booking event",
			"request_id", requestID,
			"id", doc.ID(),
			"event", events.EventBookingRequested,
			"error", err,
		)
	}

	return doc, nil
}
