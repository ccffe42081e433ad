package request

import (
	"strings"

	"github.com/google/uuid"
)

type PreviewPriceRequest struct {
	ItemType     string    `json:"item_type" binding:"required,oneof=TIER BUNDLE"`
	ItemID       uuid.UUID `json:"item_id" binding:"required"`
	Quantity     int32     `json:"quantity" binding:"required,min=1"`
	DiscountCode *string   `json:"discount_code,omitempty"`
}

func (r PreviewPriceRequest) GetDiscountCode() *string {
	return normalizeCode(r.DiscountCode)
}

type ValidateDiscountRequest struct {
	Code     string    `json:"code" binding:"required"`
	ItemType string    `json:"item_type" binding:"required,oneof=TIER BUNDLE"`
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,min=1"`
}

func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
