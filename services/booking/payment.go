// File: services/booking/payment.go
package booking

import (
	"context"
	"fmt"
	"math"

	"medibook/models"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
)

// StripePaymentProvider opens Stripe Checkout sessions for consultation fees.
// stripe.Key is set once in main from configuration.
type StripePaymentProvider struct {
	SuccessURL string
	CancelURL  string
}

func (p *StripePaymentProvider) CheckoutURL(ctx context.Context, appt models.Appointment, doctor models.Doctor) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(appt.ID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(int64(math.Round(doctor.AppointmentFee * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Consultation with " + doctor.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}
