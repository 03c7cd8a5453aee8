package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"strings"
	"time"

	"eventquote/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendQuoteEmail delivers the itemized quote to the prospect. Sending happens in
// the background; failures are logged, not returned, since the quote itself has
// already been produced.
func (s *SenderService) SendQuoteEmail(toEmail, toName, eventDate string, guests int, quote *entities.Quote) {
	emailData := entities.QuoteEmailData{
		RecipientName: toName,
		EventDate:     eventDate,
		Guests:        guests,
		LineItems:     quote.LineItems,
		Subtotal:      quote.Subtotal,
		Gratuity:      quote.Gratuity,
		TaxTotal:      quote.TaxTotal,
		GrandTotal:    quote.GrandTotal,
		Disclosures:   quote.Disclosures,
		CurrentYear:   time.Now().Year(),
	}
	if emailData.RecipientName == "" {
		emailData.RecipientName = "there"
	}

	emailSubject := fmt.Sprintf("Your event quote — total %.2f", quote.GrandTotal)
	plainTextBody := buildQuoteText(emailData)

	tmplPath := filepath.Join("internal", "templates", "quote_email.html")
	var htmlBody string
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: could not parse quote email template (%s): %v", tmplPath, err)
	} else {
		var htmlBodyBuffer bytes.Buffer
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("ALERT: could not execute quote email template: %v", err)
		}
		htmlBody = htmlBodyBuffer.String()
	}
	if htmlBody == "" {
		htmlBody = "<pre>" + template.HTMLEscapeString(plainTextBody) + "</pre>"
	}

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("ALERT (async): quote email to %s failed: %v", toEmail, errEmail)
		}
	}(toEmail, emailData.RecipientName, emailSubject, plainTextBody, htmlBody)
}

// SendQuoteSMS sends a short total-only summary; the full breakdown goes by email.
func (s *SenderService) SendQuoteSMS(toPhone string, quote *entities.Quote) {
	smsMessage := fmt.Sprintf("National Mechanics Events: your quote comes to %.2f (subtotal %.2f, gratuity %.2f, tax %.2f). Full breakdown in your email.",
		quote.GrandTotal, quote.Subtotal, quote.Gratuity, quote.TaxTotal)

	if errSMS := SendSMS(toPhone, smsMessage); errSMS != nil {
		log.Printf("ALERT: quote SMS to %s failed: %v", toPhone, errSMS)
	}
}

func buildQuoteText(data entities.QuoteEmailData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s,\n\nHere is your itemized event quote", data.RecipientName)
	if data.EventDate != "" {
		fmt.Fprintf(&sb, " for %s", data.EventDate)
	}
	if data.Guests > 0 {
		fmt.Fprintf(&sb, " (%d guests)", data.Guests)
	}
	sb.WriteString(":\n\n")

	for _, item := range data.LineItems {
		fmt.Fprintf(&sb, "  %s — %d x %.2f = %.2f\n", item.Label, item.Quantity, item.UnitPrice, item.Total)
	}

	fmt.Fprintf(&sb, "\nSubtotal: %.2f\nGratuity: %.2f\nTax: %.2f\nGrand total: %.2f\n",
		data.Subtotal, data.Gratuity, data.TaxTotal, data.GrandTotal)

	if len(data.Disclosures) > 0 {
		sb.WriteString("\n")
		for _, d := range data.Disclosures {
			fmt.Fprintf(&sb, "%s\n", d)
		}
	}

	sb.WriteString("\nLet me know if you have any questions.\n\nNational Mechanics Events\n")
	return sb.String()
}
