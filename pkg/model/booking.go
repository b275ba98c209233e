package model

import "time"

const BookingCollection = "bookingrequest"

// BookingPayload is the body accepted by POST /api/book. Required fields are
// pointers so that an absent field can be told apart from an empty string.
type BookingPayload struct {
	Name          *string `json:"name" validate:"required"`
	Email         *string `json:"email" validate:"required"`
	Phone         *string `json:"phone" validate:"required"`
	Address       *string `json:"address" validate:"required"`
	ServiceType   *string `json:"service_type" validate:"required"`
	PreferredDate *string `json:"preferred_date" validate:"required"`
	PreferredTime *string `json:"preferred_time,omitempty" jsonschema:"nullable"`
	Bedrooms      *int    `json:"bedrooms,omitempty" jsonschema:"nullable"`
	Bathrooms     *int    `json:"bathrooms,omitempty" jsonschema:"nullable"`
	Notes         *string `json:"notes,omitempty" jsonschema:"nullable"`
}

// Fields flattens the payload into the document written to the store.
// Absent optional fields are kept as explicit nulls.
func (p *BookingPayload) Fields() map[string]any {
	return map[string]any{
		"name":           value(p.Name),
		"email":          value(p.Email),
		"phone":          value(p.Phone),
		"address":        value(p.Address),
		"service_type":   value(p.ServiceType),
		"preferred_date": value(p.PreferredDate),
		"preferred_time": value(p.PreferredTime),
		"bedrooms":       value(p.Bedrooms),
		"bathrooms":      value(p.Bathrooms),
		"notes":          value(p.Notes),
	}
}

func value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// BookingRecord describes a stored booking request as returned to clients.
type BookingRecord struct {
	ID string `json:"id"`
	BookingPayload
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingResponse is the envelope of a successful submission.
type BookingResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    BookingRecord `json:"data"`
}
