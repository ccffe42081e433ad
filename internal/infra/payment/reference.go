// Package payment normalizes payment references from the supported
// providers. Charging itself happens upstream in the client-side provider
// flow; the checkout service only records the reference the provider handed
// back and enforces per-method reference shape.
package payment

import (
	"strings"

	"ticket-checkout/internal/domain/order"
	"ticket-checkout/internal/pkg/errs"
)

var ErrMalformedReference = errs.New("malformed payment reference")

// NormalizeReference trims and validates a provider payment reference for
// the given method. FREE orders never reach this path: their sentinel
// reference is assigned by the orchestrator.
func NormalizeReference(method order.PaymentMethod, raw string) (string, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return "", errs.Mark(errs.New("empty payment reference"), ErrMalformedReference)
	}

	switch method {
	case order.MethodStripe:
		// Stripe payment intents are "pi_..." identifiers.
		if !strings.HasPrefix(ref, "pi_") {
			return "", errs.Mark(errs.Newf("stripe reference %q lacks pi_ prefix", ref), ErrMalformedReference)
		}
	case order.MethodPayPal:
		if len(ref) < 8 {
			return "", errs.Mark(errs.Newf("paypal reference %q too short", ref), ErrMalformedReference)
		}
	case order.MethodCash:
		// Cash references are assigned at confirmation by the staff member;
		// the initial completion call carries a till or booking note.
	default:
		return "", errs.Mark(errs.Newf("unsupported payment method %q", method), ErrMalformedReference)
	}

	return ref, nil
}
