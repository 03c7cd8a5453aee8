package service

import (
	"time"

	"eventquote/internal/entities"
	apperrors "eventquote/internal/errors"
	"eventquote/internal/pricing"
)

// QuoteService prices booking requests against the current catalog snapshot and
// the venue policy.
type QuoteService struct {
	Catalog *CatalogService
	Policy  entities.PolicyConfig
}

func NewQuoteService(catalog *CatalogService, policy entities.PolicyConfig) *QuoteService {
	return &QuoteService{Catalog: catalog, Policy: policy}
}

// BuildQuote runs the pricing engine. The engine itself is pure; this wrapper
// only supplies the catalog snapshot and policy.
func (s *QuoteService) BuildQuote(req entities.BookingRequest) (*entities.Quote, error) {
	return pricing.Quote(req, s.Catalog.Snapshot(), s.Policy)
}

// ResolveDayType fills in the weekday/weekend classification from the event date
// when the caller did not state it. Saturday and Sunday count as weekend.
func (s *QuoteService) ResolveDayType(eventDate string, req *entities.BookingRequest) error {
	if req.DayType != "" {
		return nil
	}
	if eventDate == "" {
		return apperrors.NewValidationError("day_type", "day_type or event_date is required")
	}

	parsed, err := time.Parse("2006-01-02", eventDate)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, eventDate)
	}
	if err != nil {
		return apperrors.NewValidationError("event_date", "must be an ISO date")
	}

	switch parsed.Weekday() {
	case time.Saturday, time.Sunday:
		req.DayType = entities.DayWeekend
	default:
		req.DayType = entities.DayWeekday
	}
	return nil
}
