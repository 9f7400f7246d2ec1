package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Client creates Stripe payment intents for session registration fees.
type Client struct{}

// New configures the Stripe SDK with the account secret key.
func New(secretKey string) *Client {
	stripe.Key = secretKey
	return &Client{}
}

// CreateIntent creates a card payment intent for the given amount in cents
// and returns its client secret.
func (c *Client) CreateIntent(amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
