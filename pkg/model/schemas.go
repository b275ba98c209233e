package model

import "cleanbook/pkg/schema"

// Definitions lists the data shapes published by GET /schema.
func Definitions() *schema.Registry {
	r := schema.NewRegistry()
	r.MustRegister("BookingPayload", schema.Reflect(&BookingPayload{}))
	r.MustRegister("BookingRecord", schema.Reflect(&BookingRecord{}))
	r.MustRegister("BookingResponse", schema.Reflect(&BookingResponse{}))
	return r
}
