// Package pricing converts client-supplied line items into canonical
// monetary amounts. It is pure: no storage or network side effects.
package pricing

import (
	"net/url"
	"strings"

	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

var minorUnitFactor = decimal.NewFromInt(100)

// Line is a normalized line item. UnitAmountMinor is the unit price in the
// smallest currency unit, as required by the payment processor.
type Line struct {
	ProductID       int64
	Name            string
	UnitPrice       decimal.Decimal
	UnitAmountMinor int64
	Quantity        int
	ImageURL        string
}

// Quote is the single authoritative pricing computation for a checkout.
// Total is used both for the order record and the payment session; it is
// never recomputed downstream.
type Quote struct {
	Lines []Line
	Total decimal.Decimal
}

// Normalize validates and converts the given line items. It fails with an
// InvalidPriceError naming the offending product when a price is not a
// non-negative decimal number, and with an invalid-quantity error when a
// quantity is not positive.
func Normalize(items []model.CheckoutItem) (*Quote, error) {
	if len(items) == 0 {
		return nil, model.ErrMissingCheckoutData
	}

	quote := &Quote{
		Lines: make([]Line, 0, len(items)),
		Total: decimal.Zero,
	}

	for _, item := range items {
		price, err := decimal.NewFromString(strings.TrimSpace(item.Price))
		if err != nil || price.IsNegative() {
			return nil, model.NewInvalidPriceError(item.ProductName)
		}

		if item.Quantity <= 0 {
			return nil, model.ErrInvalidQuantity
		}

		line := Line{
			ProductID:       item.ProductID,
			Name:            item.ProductName,
			UnitPrice:       price,
			UnitAmountMinor: price.Mul(minorUnitFactor).Round(0).IntPart(),
			Quantity:        item.Quantity,
			ImageURL:        SanitizeImageURL(item.Image),
		}

		quote.Lines = append(quote.Lines, line)
		quote.Total = quote.Total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return quote, nil
}

// SanitizeImageURL normalises backslashes and keeps only absolute http(s)
// URLs. Anything else is dropped rather than passed downstream.
func SanitizeImageURL(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := strings.ReplaceAll(raw, `\`, "/")

	u, err := url.Parse(cleaned)
	if err != nil {
		return ""
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}

	return cleaned
}
