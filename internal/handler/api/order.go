package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticket-checkout/internal/domain/seating"
	reqdto "ticket-checkout/internal/handler/dto/request"
	resdto "ticket-checkout/internal/handler/dto/response"
	"ticket-checkout/internal/handler/httperr"
	"ticket-checkout/internal/usecase"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary Create order
// @Description Reserve inventory and create a PENDING order
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key header required", nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	orderEntity, err := h.orderUseCase.CreateOrder(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		h.abortCreateOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(orderEntity))
}

func (h *OrderHandler) abortCreateOrderError(c *gin.Context, err error) {
	var discountErr *usecase.DiscountRejectedError
	var seatErr *seating.UnavailableSeatError

	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, usecase.ErrSoldOut):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient inventory", nil)
	case errors.As(err, &seatErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Seat is no longer available", gin.H{
			"seat_id": seatErr.SeatID,
		})
	case errors.Is(err, seating.ErrCountMismatch):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Seat count does not match quantity", nil)
	case errors.As(err, &discountErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount code rejected", gin.H{
			"reason": string(discountErr.Reason),
		})
	case errors.Is(err, usecase.ErrDuplicateRequest):
		httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate order request with different parameters", nil)
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Complete order
// @Description Settle a pending order through one payment rail
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.CompleteOrderRequest true "Payment result"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /orders/{id}/complete [post]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	var req reqdto.CompleteOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	orderEntity, err := h.orderUseCase.CompleteOrder(c.Request.Context(), orderID, req)
	if err != nil {
		h.abortSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(orderEntity))
}

// @Summary Confirm cash payment
// @Description Staff confirmation that a cash order was paid in person
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /orders/{id}/confirm-cash [post]
func (h *OrderHandler) ConfirmCash(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	orderEntity, err := h.orderUseCase.ConfirmCashPayment(c.Request.Context(), orderID)
	if err != nil {
		h.abortSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(orderEntity))
}

// @Summary Cancel order
// @Description Release a pending order before payment
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	orderEntity, err := h.orderUseCase.CancelOrder(c.Request.Context(), orderID)
	if err != nil {
		h.abortSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(orderEntity))
}

func (h *OrderHandler) abortSettlementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errors.Is(err, usecase.ErrOrderExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Order has expired", nil)
	case errors.Is(err, usecase.ErrOrderNotPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order is not pending", nil)
	case errors.Is(err, usecase.ErrOrderNotCashPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order is not awaiting cash confirmation", nil)
	case errors.Is(err, usecase.ErrMalformedPaymentRef):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed payment reference", nil)
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Get order
// @Description Fetch one order with its full price breakdown
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	orderEntity, err := h.orderUseCase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(orderEntity))
}

// @Summary Join waitlist
// @Description Register interest in a sold-out tier
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.JoinWaitlistRequest true "Waitlist entry"
// @Success 201 {object} resdto.WaitlistResponse
// @Failure 400 {object} httperr.Response
// @Router /waitlist [post]
func (h *OrderHandler) JoinWaitlist(c *gin.Context) {
	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.orderUseCase.JoinWaitlist(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.WaitlistResponse{ID: id})
}

func (h *OrderHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, usecase.ErrIdempotencyKeyRequired
	}
	return uuid.Parse(raw)
}
