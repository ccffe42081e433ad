package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "ticket-checkout/internal/handler/dto/request"
	resdto "ticket-checkout/internal/handler/dto/response"
	"ticket-checkout/internal/handler/httperr"
	"ticket-checkout/internal/usecase"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// @Summary Preview price
// @Description Compute the full price breakdown for a selection without creating anything
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewPriceRequest true "Selection to price"
// @Success 200 {object} resdto.PreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /checkout/preview [post]
func (h *CheckoutHandler) PreviewPrice(c *gin.Context) {
	var req reqdto.PreviewPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	preview, err := h.checkoutUseCase.PreviewPrice(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		case errors.Is(err, usecase.ErrInvalidItemType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item type", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPreview(preview))
}

// @Summary Validate discount code
// @Description Check a discount code against the current cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateDiscountRequest true "Code and cart"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /checkout/discount [post]
func (h *CheckoutHandler) ValidateDiscount(c *gin.Context) {
	var req reqdto.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.checkoutUseCase.ValidateDiscount(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		case errors.Is(err, usecase.ErrInvalidItemType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item type", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountResult(result))
}
