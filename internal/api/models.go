package api

import "eventquote/internal/entities"

// QuoteRequest is the booking payload plus an optional event date.
type QuoteRequest struct {
	entities.BookingRequest
	// EventDate lets the caller omit day_type; weekday/weekend is derived from it.
	EventDate string `json:"event_date,omitempty"`
}

// SendQuoteRequest prices a booking and delivers the result by email and/or SMS.
type SendQuoteRequest struct {
	QuoteRequest
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type SendQuoteResponse struct {
	Quote   *entities.Quote `json:"quote"`
	Message string          `json:"message"`
}
