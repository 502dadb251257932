package html

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-tarotsite/pkg/content"
)

func templateFilters() map[string]any {
	return map[string]any{
		"price":    pongo2.FilterFunction(filterPrice),
		"amount":   pongo2.FilterFunction(filterAmount),
		"richtext": pongo2.FilterFunction(filterRichText),
	}
}

// filterPrice formats rupees with the currency sign: 1500 -> "₹1,500".
func filterPrice(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsNumber() {
		return nil, &pongo2.Error{Sender: "filter:price", OrigError: fmt.Errorf("expected a number, got %v", in.Interface())}
	}
	return pongo2.AsValue(content.FormatPrice(int64(in.Integer()))), nil
}

// filterAmount formats rupees without the currency sign: 1500 -> "1,500".
func filterAmount(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsNumber() {
		return nil, &pongo2.Error{Sender: "filter:amount", OrigError: fmt.Errorf("expected a number, got %v", in.Interface())}
	}
	return pongo2.AsValue(content.FormatAmount(int64(in.Integer()))), nil
}

// filterRichText sanitises a content fragment and marks it safe so the
// allowed inline markup survives autoescaping.
func filterRichText(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(content.SanitizeHTML(content.RichText(in.String()))), nil
}
