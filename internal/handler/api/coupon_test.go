//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coupon-service/internal/handler/api"
	resdto "coupon-service/internal/handler/dto/response"
	"coupon-service/internal/pkg/errs"
	"coupon-service/internal/usecase/commands"
	"coupon-service/tests/common/builder"
	"coupon-service/tests/common/httptest"
	"coupon-service/tests/common/testutil"
	commandsmock "coupon-service/tests/mock/commands"
	queriesmock "coupon-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/coupons", s.handler.Create)
	s.router.POST("/coupons/:code/redeem", s.handler.Redeem)
	s.router.GET("/coupons/:code", s.handler.Get)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

type testCaseCoupon struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/coupons"

	reqBody := builder.NewCouponBuilder().BuildCreateRequestDTO()
	returnView := builder.NewCouponBuilder().BuildView()

	validationCases := []testCaseCoupon{
		{name: "missing field: code (required)", mutate: testutil.Field("code", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: maxUses (required)", mutate: testutil.Field("maxUses", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: country (required)", mutate: testutil.Field("country", nil), expectCode: http.StatusBadRequest},
		{name: "maxUses boundary OK (1)", mutate: testutil.Field("maxUses", 1), expectCode: http.StatusCreated},
		{name: "maxUses boundary invalid (0)", mutate: testutil.Field("maxUses", 0), expectCode: http.StatusBadRequest},
		{name: "maxUses invalid (negative)", mutate: testutil.Field("maxUses", -2), expectCode: http.StatusBadRequest},
		{name: "country length invalid (3 letters)", mutate: testutil.Field("country", "POL"), expectCode: http.StatusBadRequest},
		{name: "country length invalid (1 letter)", mutate: testutil.Field("country", "P"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with CouponResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.Code, reqBody.MaxUses, reqBody.Country).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Code, response.Code)
		s.Equal(returnView.MaxUses, response.MaxUses)
		s.Equal(0, response.CurrentUses)
		s.Equal(returnView.Country, response.Country)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "ValidationError")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "domain validation error",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "ValidationError",
			},
			{
				name:           "duplicate code",
				commandsError:  errs.ErrCouponCodeExists,
				expectedStatus: http.StatusConflict,
				expectedCode:   "CouponCodeExists",
			},
			{
				name:           "database failure",
				commandsError:  errs.ErrDatabaseOperationFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "InternalError",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "InternalError",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.Code, reqBody.MaxUses, reqBody.Country).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *CouponHandlerTestSuite) TestRedeem() {
	url := "/coupons/SALE10/redeem"

	reqBody := builder.NewCouponBuilder().BuildRedeemRequestDTO()
	returnView := builder.NewCouponBuilder().WithCurrentUses(1).BuildView()

	s.Run("success: returns 200 OK with updated CouponResponse", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "SALE10", reqBody.UserID, reqBody.IPAddress).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.Code, response.Code)
		s.Equal(1, response.CurrentUses)
	})

	s.Run("success: code comes from the path, not the body", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "other-code", reqBody.UserID, reqBody.IPAddress).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/other-code/redeem", reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []testCaseCoupon{
			{name: "missing field: userId (required)", mutate: testutil.Field("userId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: ipAddress (required)", mutate: testutil.Field("ipAddress", nil), expectCode: http.StatusBadRequest},
			{name: "empty userId", mutate: testutil.Field("userId", ""), expectCode: http.StatusBadRequest},
			{name: "empty ipAddress", mutate: testutil.Field("ipAddress", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "ValidationError")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "coupon not found",
				commandsError:  errs.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "CouponNotFound",
			},
			{
				name:           "use limit exceeded",
				commandsError:  errs.ErrUseLimitExceeded,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "CouponUseLimitExceeded",
			},
			{
				name:           "already used by this user",
				commandsError:  errs.ErrCouponAlreadyUsed,
				expectedStatus: http.StatusForbidden,
				expectedCode:   "CouponAlreadyUsed",
			},
			{
				name:           "geo lookup failed",
				commandsError:  errs.ErrGeoLookupFailed,
				expectedStatus: http.StatusBadGateway,
				expectedCode:   "GeoIpLookupFailed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "InternalError",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Redeem(gomock.Any(), "SALE10", reqBody.UserID, reqBody.IPAddress).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: 403 country mismatch includes the resolved country", func() {
		mismatch := errs.Mark(&commands.CountryNotAllowedError{
			Code:            "SALE10",
			ResolvedCountry: "US",
		}, errs.ErrCountryNotAllowed)

		s.mockCommands.EXPECT().Redeem(gomock.Any(), "SALE10", reqBody.UserID, reqBody.IPAddress).
			Return(nil, mismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		envelope := httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "CouponCountryNotAllowed")
		s.Equal("US", envelope.Detail["resolvedCountry"])
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CouponHandlerTestSuite) TestGet() {
	url := "/coupons/SALE10"

	returnView := builder.NewCouponBuilder().WithCurrentUses(1).BuildView()

	s.Run("success: returns 200 OK with CouponResponse", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "SALE10").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.Code, response.Code)
		s.Equal(returnView.CurrentUses, response.CurrentUses)
		s.Equal(returnView.MaxUses, response.MaxUses)
		s.Equal(returnView.Country, response.Country)
	})

	s.Run("error: 404 Not Found for missing coupon", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "SALE10").
			Return(nil, errs.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "CouponNotFound")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "SALE10").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "InternalError")
	})
}
