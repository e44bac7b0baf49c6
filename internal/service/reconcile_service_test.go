package service

import (
	"testing"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ReconcileServiceTestSuite struct {
	suite.Suite
	m                *repoMocks
	reconcileService *ReconcileService
}

func TestReconcileServiceSuite(t *testing.T) {
	suite.Run(t, new(ReconcileServiceTestSuite))
}

func (s *ReconcileServiceTestSuite) SetupTest() {
	s.m = newRepoMocks(gomock.NewController(s.T()))

	reconcileService, err := NewReconcileService(s.m.uow, NewCounterSynchronizer())
	s.Require().NoError(err)
	s.reconcileService = reconcileService
}

func (s *ReconcileServiceTestSuite) TestProfilesAfter() {
	s.m.profiles.EXPECT().ListUserIDs(gomock.Any(), int64(100), uint(50)).Return([]int64{101, 105}, nil)

	ids, err := s.reconcileService.ProfilesAfter(s.T().Context(), 100, 50)
	s.Require().NoError(err)
	s.Equal([]int64{101, 105}, ids)
}

func (s *ReconcileServiceTestSuite) TestReconcileProfiles() {
	drifts := []domain.CounterDrift{{UserID: 5, Field: domain.CounterDiscountsUsed, Stored: 0, Computed: 1}}
	s.m.expectTx(2)
	s.m.profiles.EXPECT().LockForUpdate(gomock.Any(), []int64{5, 6}).Return(nil)
	s.m.profiles.EXPECT().Recount(gomock.Any(), []int64{5, 6}).Return(drifts, nil)

	got, err := s.reconcileService.ReconcileProfiles(s.T().Context(), []int64{6, 5})
	s.Require().NoError(err)
	s.Equal(drifts, got)

	s.m.profiles.EXPECT().LockForUpdate(gomock.Any(), []int64{9}).Return(domain.ErrRecordNotFound)
	_, err = s.reconcileService.ReconcileProfiles(s.T().Context(), []int64{9})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
