//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ticket-checkout/internal/domain/catalog"
	"ticket-checkout/internal/domain/discount"
	"ticket-checkout/internal/domain/pricing"
	"ticket-checkout/internal/handler/api"
	reqdto "ticket-checkout/internal/handler/dto/request"
	resdto "ticket-checkout/internal/handler/dto/response"
	"ticket-checkout/internal/usecase"
	"ticket-checkout/tests/common/httptest"
	"ticket-checkout/tests/common/testutil"
	usecasemock "ticket-checkout/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *usecasemock.MockCheckoutUseCase
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = usecasemock.NewMockCheckoutUseCase(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCheckout)

	s.router.POST("/checkout/preview", s.handler.PreviewPrice)
	s.router.POST("/checkout/discount", s.handler.ValidateDiscount)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

type testCaseCheckout struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestPreviewPrice
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestPreviewPrice() {
	url := "/checkout/preview"
	itemID := uuid.New()

	reqBody := reqdto.PreviewPriceRequest{
		ItemType: "TIER",
		ItemID:   itemID,
		Quantity: 1,
	}

	quote, err := pricing.Calculate(5000, 1, 0, pricing.ModelPassThrough)
	s.Require().NoError(err)
	preview := &usecase.Preview{
		Item: catalog.Item{
			Type:           catalog.ItemTier,
			ID:             itemID,
			Name:           "General Admission",
			UnitPriceCents: 5000,
			PaymentModel:   pricing.ModelPassThrough,
		},
		Quote: quote,
	}

	s.Run("success: returns 200 OK with full fee breakdown", func() {
		s.mockCheckout.EXPECT().PreviewPrice(gomock.Any(), reqBody).
			Return(preview, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.PreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(itemID, response.ItemID)
		s.Equal("TIER", response.ItemType)
		s.Equal(int64(5000), response.Quote.SubtotalCents)
		s.Equal(int64(364), response.Quote.PlatformFeeCents)
		s.Equal(int64(186), response.Quote.ProcessingFeeCents)
		s.Equal(int64(5550), response.Quote.TotalCents)
		s.Nil(response.Discount)
	})

	s.Run("success: includes discount verdict when a code was sent", func() {
		code := "SPRING20"
		reqWithCode := reqBody
		reqWithCode.DiscountCode = &code

		discounted, calcErr := pricing.Calculate(5000, 1, 1000, pricing.ModelPassThrough)
		s.Require().NoError(calcErr)
		previewWithDiscount := &usecase.Preview{
			Item:     preview.Item,
			Quote:    discounted,
			Discount: &discount.Result{Valid: true, DiscountCents: 1000},
		}

		s.mockCheckout.EXPECT().PreviewPrice(gomock.Any(), reqWithCode).
			Return(previewWithDiscount, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqWithCode, "")

		var response resdto.PreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1000), response.Quote.DiscountCents)
		s.Equal(int64(327), response.Quote.PlatformFeeCents)
		s.Equal(int64(155), response.Quote.ProcessingFeeCents)
		s.Equal(int64(4482), response.Quote.TotalCents)
		s.Require().NotNil(response.Discount)
		s.True(response.Discount.Valid)
		s.Equal(int64(1000), response.Discount.DiscountCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseCheckout{
			{name: "missing field: item_type", mutate: testutil.Field("item_type", nil), expectCode: http.StatusBadRequest},
			{name: "invalid item_type value", mutate: testutil.Field("item_type", "SEAT"), expectCode: http.StatusBadRequest},
			{name: "missing field: item_id", mutate: testutil.Field("item_id", nil), expectCode: http.StatusBadRequest},
			{name: "quantity below minimum", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "item not found",
				usecaseError:   usecase.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "invalid item type",
				usecaseError:   usecase.ErrInvalidItemType,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid item type",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().PreviewPrice(gomock.Any(), reqBody).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestValidateDiscount
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestValidateDiscount() {
	url := "/checkout/discount"
	itemID := uuid.New()

	reqBody := reqdto.ValidateDiscountRequest{
		Code:     "SPRING20",
		ItemType: "TIER",
		ItemID:   itemID,
		Quantity: 2,
	}

	s.Run("success: returns 200 OK with valid verdict", func() {
		s.mockCheckout.EXPECT().ValidateDiscount(gomock.Any(), reqBody).
			Return(discount.Result{Valid: true, DiscountCents: 1000}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Equal(int64(1000), response.DiscountCents)
		s.Empty(response.Reason)
	})

	s.Run("success: rejection verdict is 200 OK with a reason, not an error", func() {
		s.mockCheckout.EXPECT().ValidateDiscount(gomock.Any(), reqBody).
			Return(discount.Result{Reason: discount.ReasonExpired}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal(int64(0), response.DiscountCents)
		s.Equal("expired", response.Reason)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseCheckout{
			{name: "missing field: code", mutate: testutil.Field("code", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: item_id", mutate: testutil.Field("item_id", nil), expectCode: http.StatusBadRequest},
			{name: "quantity below minimum", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 404 Not Found when the cart item vanished", func() {
		s.mockCheckout.EXPECT().ValidateDiscount(gomock.Any(), reqBody).
			Return(discount.Result{}, usecase.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}
