package content

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var priceTag = language.MustParse("en-IN")

// FormatAmount groups a rupee amount the way Indian English does ("2,800").
func FormatAmount(amount int64) string {
	return message.NewPrinter(priceTag).Sprintf("%d", amount)
}

// FormatPrice prefixes FormatAmount with the rupee sign.
func FormatPrice(amount int64) string {
	return "₹" + FormatAmount(amount)
}
