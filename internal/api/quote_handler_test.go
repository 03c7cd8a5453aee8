package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventquote/internal/entities"
	apperrors "eventquote/internal/errors"
)

type fakeQuoteService struct {
	resolveErr error
	quote      *entities.Quote
	quoteErr   error
	gotRequest entities.BookingRequest
}

func (f *fakeQuoteService) ResolveDayType(eventDate string, req *entities.BookingRequest) error {
	if f.resolveErr != nil {
		return f.resolveErr
	}
	if req.DayType == "" {
		req.DayType = entities.DayWeekday
	}
	return nil
}

func (f *fakeQuoteService) BuildQuote(req entities.BookingRequest) (*entities.Quote, error) {
	f.gotRequest = req
	if f.quoteErr != nil {
		return nil, f.quoteErr
	}
	return f.quote, nil
}

type fakeCatalogSource struct {
	catalog entities.Catalog
}

func (f *fakeCatalogSource) Snapshot() entities.Catalog { return f.catalog }

type fakeSender struct {
	emails []string
	phones []string
}

func (f *fakeSender) SendQuoteEmail(toEmail, toName, eventDate string, guests int, quote *entities.Quote) {
	f.emails = append(f.emails, toEmail)
}

func (f *fakeSender) SendQuoteSMS(toPhone string, quote *entities.Quote) {
	f.phones = append(f.phones, toPhone)
}

func setupQuoteRouter(svc *fakeQuoteService, sender *fakeSender) *mux.Router {
	handler := NewQuoteHandler(svc, &fakeCatalogSource{}, sender)
	r := mux.NewRouter()
	r.HandleFunc("/api/quote", handler.CreateQuote).Methods("POST")
	r.HandleFunc("/api/quote/send", handler.SendQuote).Methods("POST")
	r.HandleFunc("/api/catalog", handler.GetCatalog).Methods("GET")
	return r
}

func sampleQuote() *entities.Quote {
	return &entities.Quote{
		LineItems: []entities.LineItem{
			{Label: "Food Package: Package 1", Quantity: 10, UnitPrice: 20, Total: 200},
		},
		CategorySubtotals: entities.CategorySubtotals{Food: 200},
		Subtotal:          200,
		Gratuity:          40,
		FoodTax:           19.2,
		TaxTotal:          19.2,
		GrandTotal:        259.2,
	}
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		svc          *fakeQuoteService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "success",
			payload:      `{"guests":10,"duration_minutes":120,"day_type":"weekday","food_package_id":"pkg_1"}`,
			svc:          &fakeQuoteService{quote: sampleQuote()},
			expectedCode: http.StatusOK,
			expectedBody: `"grand_total":259.2`,
		},
		{
			name:         "invalid json",
			payload:      `not json`,
			svc:          &fakeQuoteService{quote: sampleQuote()},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "validation error",
			payload:      `{"guests":-1}`,
			svc:          &fakeQuoteService{quoteErr: apperrors.NewValidationError("guests", "must not be negative")},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid guests",
		},
		{
			name:         "unknown catalog id",
			payload:      `{"guests":10,"day_type":"weekday","food_package_id":"pkg_missing"}`,
			svc:          &fakeQuoteService{quoteErr: apperrors.NewNotFoundError("food package", "pkg_missing")},
			expectedCode: http.StatusNotFound,
			expectedBody: "pkg_missing",
		},
		{
			name:         "policy misconfigured",
			payload:      `{"guests":10,"day_type":"weekday"}`,
			svc:          &fakeQuoteService{quoteErr: apperrors.NewConfigurationError("gratuity_rate")},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "day type resolution fails",
			payload:      `{"guests":10}`,
			svc:          &fakeQuoteService{resolveErr: apperrors.NewValidationError("day_type", "day_type or event_date is required")},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router := setupQuoteRouter(testCase.svc, &fakeSender{})
			req := httptest.NewRequest("POST", "/api/quote", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestQuoteHandler_CreateQuote_PassesBookingThrough(t *testing.T) {
	svc := &fakeQuoteService{quote: sampleQuote()}
	router := setupQuoteRouter(svc, &fakeSender{})

	payload := `{"guests":25,"duration_minutes":180,"event_date":"2026-08-26","open_bar_tier_id":"house","open_bar_duration_minutes":150}`
	req := httptest.NewRequest("POST", "/api/quote", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 25, svc.gotRequest.Guests)
	assert.Equal(t, "house", svc.gotRequest.OpenBarTierID)
	assert.Equal(t, 150, svc.gotRequest.OpenBarDurationMinutes)
	assert.Equal(t, entities.DayWeekday, svc.gotRequest.DayType)
}

func TestQuoteHandler_SendQuote(t *testing.T) {
	t.Run("requires email or phone", func(t *testing.T) {
		router := setupQuoteRouter(&fakeQuoteService{quote: sampleQuote()}, &fakeSender{})
		req := httptest.NewRequest("POST", "/api/quote/send", bytes.NewBufferString(`{"guests":10,"day_type":"weekday"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("delivers by email and sms", func(t *testing.T) {
		sender := &fakeSender{}
		router := setupQuoteRouter(&fakeQuoteService{quote: sampleQuote()}, sender)
		payload := `{"guests":10,"day_type":"weekday","food_package_id":"pkg_1","email":"p@example.com","phone":"+12155550100"}`
		req := httptest.NewRequest("POST", "/api/quote/send", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Quote sent.")
		assert.Equal(t, []string{"p@example.com"}, sender.emails)
		assert.Equal(t, []string{"+12155550100"}, sender.phones)
	})

	t.Run("no delivery on pricing failure", func(t *testing.T) {
		sender := &fakeSender{}
		svc := &fakeQuoteService{quoteErr: apperrors.NewNotFoundError("food package", "pkg_missing")}
		router := setupQuoteRouter(svc, sender)
		payload := `{"guests":10,"day_type":"weekday","food_package_id":"pkg_missing","email":"p@example.com"}`
		req := httptest.NewRequest("POST", "/api/quote/send", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Empty(t, sender.emails)
	})
}

func TestQuoteHandler_GetCatalog(t *testing.T) {
	catalog := entities.Catalog{
		FoodPackages: map[string]entities.FoodPackage{
			"pkg_1": {ID: "pkg_1", Name: "Package 1", PricePerGuest: 20},
		},
	}
	handler := NewQuoteHandler(&fakeQuoteService{}, &fakeCatalogSource{catalog: catalog}, &fakeSender{})
	r := mux.NewRouter()
	r.HandleFunc("/api/catalog", handler.GetCatalog).Methods("GET")

	req := httptest.NewRequest("GET", "/api/catalog", nil)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var decoded entities.Catalog
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	assert.Equal(t, catalog.FoodPackages, decoded.FoodPackages)
}
