package payment

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/pricing"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// stripeGateway implements Gateway against Stripe's hosted checkout.
type stripeGateway struct {
	currency string
	logger   zerolog.Logger
}

// NewStripeGateway configures the Stripe client and returns a gateway that
// creates payment-mode checkout sessions in the given currency.
func NewStripeGateway(apiKey, currency string, logger zerolog.Logger) Gateway {
	stripe.Key = apiKey
	return &stripeGateway{
		currency: currency,
		logger:   logger.With().Str("gateway", "stripe").Logger(),
	}
}

// CreateSession requests a redirect-mode checkout session with one
// price-data entry per line. Failures are reported as gateway errors, never
// swallowed.
func (g *stripeGateway) CreateSession(ctx context.Context, lines []pricing.Line, successURL, cancelURL string) (*SessionHandle, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no line items for payment session")
	}

	params := buildSessionParams(lines, g.currency, successURL, cancelURL)
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		g.logger.Error().
			Err(err).
			Int("line_count", len(lines)).
			Msg("stripe session creation failed")
		return nil, model.NewGatewayError(err)
	}

	g.logger.Info().
		Str("session_id", sess.ID).
		Int("line_count", len(lines)).
		Msg("checkout session created")

	return &SessionHandle{
		SessionID:   sess.ID,
		RedirectURL: sess.URL,
	}, nil
}

// buildSessionParams maps normalized lines onto Stripe checkout-session
// parameters. Kept separate from the API call so the mapping is testable
// without the network.
func buildSessionParams(lines []pricing.Line, currency, successURL, cancelURL string) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(line.Name),
		}
		if line.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{line.ImageURL})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(line.UnitAmountMinor),
			},
			Quantity: stripe.Int64(int64(line.Quantity)),
		})
	}

	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	}
}
