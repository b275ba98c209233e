package handler

import (
	"net/http"

	"cleanbook/internal/bookings/service"
	"cleanbook/internal/bookings/validator"
	httputil "cleanbook/pkg/http"
	"cleanbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const BookingReceivedMessage = "Booking request received!"

type BookingHandler struct {
	service   service.BookingService
	validator *validator.BookingValidator
	log       *logger.Logger
}

func NewBookingHandler(service service.BookingService, validator *validator.BookingValidator, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service:   service,
		validator: validator,
		log:       log,
	}
}

// Submit binds and validates the body before the service sees it; invalid
// requests never reach the store.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload, err := h.validator.Bind(r.Body)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	doc, err := h.service.Submit(r.Context(), payload)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSubmission(w, BookingReceivedMessage, doc); err != nil {
		h.log.Error("failed to write submission response", "handler", "Submit", "operation", "WriteSubmission", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/book", h.Submit)
}
