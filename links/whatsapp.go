// Package links builds outbound links for contact and booking calls to
// action.
package links

import (
	"fmt"
	"net/url"
	"strings"
)

const whatsappBase = "https://wa.me/"

// WhatsAppLink builds a wa.me chat link for the given phone number and
// prefilled message. Everything but digits is stripped from the number; an
// empty message yields a bare chat link.
func WhatsAppLink(phone, message string) string {
	number := digitsOnly(phone)
	link := whatsappBase + number
	if message == "" {
		return link
	}
	return link + "?text=" + encodeComponent(message)
}

// GenericInquiry is the default prefilled message for the contact page CTA.
func GenericInquiry(siteName string) string {
	return fmt.Sprintf("Hello! I would like to know more about %s.", siteName)
}

// BookingInquiry is the prefilled message for an accommodation detail page.
func BookingInquiry(accommodationName string) string {
	return fmt.Sprintf("Hello! I would like to book the %s. Is it available?", accommodationName)
}

// ActivityInquiry is the prefilled message for an activity detail page.
func ActivityInquiry(activityName string) string {
	return fmt.Sprintf("Hello! I am interested in the %s activity. Could you share the details?", activityName)
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeComponent escapes the message the way browsers escape URI
// components: spaces become %20, not +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
