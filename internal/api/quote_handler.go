package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventquote/internal/entities"
	apperrors "eventquote/internal/errors"
)

// QuoteService is the pricing surface the handlers depend on.
type QuoteService interface {
	ResolveDayType(eventDate string, req *entities.BookingRequest) error
	BuildQuote(req entities.BookingRequest) (*entities.Quote, error)
}

// CatalogSource exposes the current catalog snapshot.
type CatalogSource interface {
	Snapshot() entities.Catalog
}

// QuoteSender delivers a priced quote out of band.
type QuoteSender interface {
	SendQuoteEmail(toEmail, toName, eventDate string, guests int, quote *entities.Quote)
	SendQuoteSMS(toPhone string, quote *entities.Quote)
}

type QuoteHandler struct {
	Service QuoteService
	Catalog CatalogSource
	Sender  QuoteSender
}

func NewQuoteHandler(svc QuoteService, catalog CatalogSource, sender QuoteSender) *QuoteHandler {
	return &QuoteHandler{Service: svc, Catalog: catalog, Sender: sender}
}

func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.ResolveDayType(req.EventDate, &req.BookingRequest); err != nil {
		writeQuoteError(w, err)
		return
	}
	quote, err := h.Service.BuildQuote(req.BookingRequest)
	if err != nil {
		writeQuoteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func (h *QuoteHandler) SendQuote(w http.ResponseWriter, r *http.Request) {
	var req SendQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" && req.Phone == "" {
		http.Error(w, "email or phone is required", http.StatusBadRequest)
		return
	}
	if err := h.Service.ResolveDayType(req.EventDate, &req.BookingRequest); err != nil {
		writeQuoteError(w, err)
		return
	}
	quote, err := h.Service.BuildQuote(req.BookingRequest)
	if err != nil {
		writeQuoteError(w, err)
		return
	}

	if req.Email != "" {
		h.Sender.SendQuoteEmail(req.Email, req.Name, req.EventDate, req.Guests, quote)
	}
	if req.Phone != "" {
		h.Sender.SendQuoteSMS(req.Phone, quote)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SendQuoteResponse{
		Quote:   quote,
		Message: "Quote sent.",
	})
}

func (h *QuoteHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Catalog.Snapshot())
}

// writeQuoteError maps engine error kinds onto HTTP statuses: bad input is the
// caller's to fix, a stale catalog id is a 404, an incomplete policy is a server
// fault.
func writeQuoteError(w http.ResponseWriter, err error) {
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var configErr *apperrors.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		http.Error(w, notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &configErr):
		http.Error(w, "Pricing policy misconfigured", http.StatusInternalServerError)
	default:
		http.Error(w, "Could not build quote", http.StatusInternalServerError)
	}
}
