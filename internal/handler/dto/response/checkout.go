package response

import (
	"github.com/google/uuid"

	"ticket-checkout/internal/domain/discount"
	"ticket-checkout/internal/usecase"
)

type QuoteResponse struct {
	SubtotalCents      int64 `json:"subtotalCents"`
	DiscountCents      int64 `json:"discountCents"`
	PlatformFeeCents   int64 `json:"platformFeeCents"`
	ProcessingFeeCents int64 `json:"processingFeeCents"`
	TotalCents         int64 `json:"totalCents"`
}

type PreviewResponse struct {
	ItemID       uuid.UUID         `json:"itemId"`
	ItemType     string            `json:"itemType"`
	ItemName     string            `json:"itemName"`
	PaymentModel string            `json:"paymentModel"`
	Quote        QuoteResponse     `json:"quote"`
	Discount     *DiscountResponse `json:"discount,omitempty"`
}

type DiscountResponse struct {
	Valid         bool   `json:"valid"`
	DiscountCents int64  `json:"discountCents"`
	Reason        string `json:"reason,omitempty"`
}

func FromPreview(p *usecase.Preview) *PreviewResponse {
	resp := &PreviewResponse{
		ItemID:       p.Item.ID,
		ItemType:     string(p.Item.Type),
		ItemName:     p.Item.Name,
		PaymentModel: string(p.Item.PaymentModel),
		Quote: QuoteResponse{
			SubtotalCents:      p.Quote.SubtotalCents,
			DiscountCents:      p.Quote.DiscountCents,
			PlatformFeeCents:   p.Quote.PlatformFeeCents,
			ProcessingFeeCents: p.Quote.ProcessingFeeCents,
			TotalCents:         p.Quote.TotalCents,
		},
	}
	if p.Discount != nil {
		resp.Discount = FromDiscountResult(*p.Discount)
	}
	return resp
}

func FromDiscountResult(r discount.Result) *DiscountResponse {
	return &DiscountResponse{
		Valid:         r.Valid,
		DiscountCents: r.DiscountCents,
		Reason:        string(r.Reason),
	}
}
