//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"coupon-service/internal/infra"
	"coupon-service/internal/pkg/errs"
	"coupon-service/internal/usecase/queries"
	"coupon-service/tests/common/builder"
	queriesmock "coupon-service/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockCouponReadStore
	queries       queries.CouponQueries
}

func (s *CouponQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockCouponReadStore(s.mockCtrl)
	s.queries = queries.NewCouponQueries(s.mockReadStore)
}

func (s *CouponQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponQueriesSuite(t *testing.T) {
	suite.Run(t, new(CouponQueriesTestSuite))
}

func (s *CouponQueriesTestSuite) TestGetByCode() {
	ctx := context.Background()

	s.Run("success: returns the stored view", func() {
		view := builder.NewCouponBuilder().WithCurrentUses(1).BuildView()
		s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "SALE10").
			Return(view, nil).Times(1)

		actual, err := s.queries.GetByCode(ctx, "SALE10")
		s.Require().NoError(err)
		s.Equal(view, actual)
	})

	s.Run("error: missing coupon maps to not found", func() {
		s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "MISSING").
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound}).Times(1)

		actual, err := s.queries.GetByCode(ctx, "MISSING")
		s.Require().Nil(actual)
		s.Require().ErrorIs(err, errs.ErrCouponNotFound)
	})

	s.Run("error: storage failure maps to database error", func() {
		s.mockReadStore.EXPECT().FindByCode(gomock.Any(), "SALE10").
			Return(nil, errors.New("connection reset")).Times(1)

		actual, err := s.queries.GetByCode(ctx, "SALE10")
		s.Require().Nil(actual)
		s.Require().ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
