// Package whatsapp builds wa.me deep links from stored contact data.
package whatsapp

import (
	"net/url"
	"strings"
)

// DigitsOnly strips every non-digit rune from a phone number. Stored numbers
// are free-form ("+55 (11) 98765-4321"); wa.me accepts digits only.
func DigitsOnly(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link returns the WhatsApp deep link for a phone number, with the greeting
// URL-encoded as the prefilled message when non-empty.
func Link(phone, greeting string) string {
	u := "https://wa.me/" + DigitsOnly(phone)
	if greeting != "" {
		u += "?text=" + url.QueryEscape(greeting)
	}
	return u
}
