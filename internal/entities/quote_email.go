package entities

// QuoteEmailData feeds the HTML email template for a delivered quote.
type QuoteEmailData struct {
	RecipientName string
	EventDate     string
	Guests        int
	LineItems     []LineItem
	Subtotal      float64
	Gratuity      float64
	TaxTotal      float64
	GrandTotal    float64
	Disclosures   []string
	CurrentYear   int
}
