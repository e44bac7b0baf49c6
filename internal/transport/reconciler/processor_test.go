package reconciler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/logger"
	"github.com/fsdevblog/anticrisis/internal/metrics"
	"github.com/fsdevblog/anticrisis/internal/transport/reconciler/mocks"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockService *mocks.MockServicer
	ctrl        *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockServicer(s.ctrl)

	s.processor = New(s.mockService, logger.New(io.Discard, "debug")).
		SetBatchSize(4).
		SetWorkers(2).
		SetMetrics(metrics.NewReconcileMetrics(prometheus.NewRegistry()))
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestRunOnce_Empty профилей нет, проход завершается сразу.
func (s *ProcessorTestSuite) TestRunOnce_Empty() {
	s.mockService.EXPECT().ProfilesAfter(gomock.Any(), int64(0), uint(4)).Return(nil, nil).Times(1)
	s.mockService.EXPECT().ReconcileProfiles(gomock.Any(), gomock.Any()).Times(0)

	report, err := s.processor.RunOnce(s.T().Context())
	s.Require().NoError(err)
	s.Zero(report.Profiles)
	s.Empty(report.Drifts)
}

// TestRunOnce_Pages две полные страницы и хвост. Каждая страница делится между двумя воркерами.
func (s *ProcessorTestSuite) TestRunOnce_Pages() {
	gomock.InOrder(
		s.mockService.EXPECT().ProfilesAfter(gomock.Any(), int64(0), uint(4)).Return([]int64{1, 2, 3, 4}, nil),
		s.mockService.EXPECT().ProfilesAfter(gomock.Any(), int64(4), uint(4)).Return([]int64{5, 6, 7, 8}, nil),
		s.mockService.EXPECT().ProfilesAfter(gomock.Any(), int64(8), uint(4)).Return([]int64{9}, nil),
	)

	var (
		mu   sync.Mutex
		seen []int64
	)
	s.mockService.EXPECT().
		ReconcileProfiles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []int64) ([]domain.CounterDrift, error) {
			mu.Lock()
			seen = append(seen, ids...)
			mu.Unlock()
			s.LessOrEqual(len(ids), 2)
			if ids[0] == 5 {
				return []domain.CounterDrift{
					{UserID: 5, Field: domain.CounterFollowers, Stored: 3, Computed: 2},
				}, nil
			}
			return nil, nil
		}).Times(5)

	report, err := s.processor.RunOnce(s.T().Context())
	s.Require().NoError(err)
	s.Equal(9, report.Profiles)
	s.Require().Len(report.Drifts, 1)
	s.Equal(int64(5), report.Drifts[0].UserID)
	s.ElementsMatch([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)
}

// TestRunOnce_WorkerError ошибка любого воркера прерывает проход.
func (s *ProcessorTestSuite) TestRunOnce_WorkerError() {
	s.mockService.EXPECT().ProfilesAfter(gomock.Any(), int64(0), uint(4)).Return([]int64{1, 2, 3, 4}, nil).Times(1)

	storeErr := fmt.Errorf("reconciling profiles: %w", domain.ErrTransient)
	s.mockService.EXPECT().
		ReconcileProfiles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []int64) ([]domain.CounterDrift, error) {
			if ids[0] == 3 {
				return nil, storeErr
			}
			return nil, nil
		}).Times(2)

	_, err := s.processor.RunOnce(s.T().Context())
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrTransient)
}

// TestRunOnce_ProduceError ошибка чтения страницы возвращается как есть.
func (s *ProcessorTestSuite) TestRunOnce_ProduceError() {
	storeErr := errors.New("connection refused")
	s.mockService.EXPECT().ProfilesAfter(gomock.Any(), int64(0), uint(4)).Return(nil, storeErr).Times(1)

	_, err := s.processor.RunOnce(s.T().Context())
	s.ErrorIs(err, storeErr)
}

// TestRun_StopsOnCancel Run делает первый проход сразу и выходит после отмены контекста.
func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	ctx, cancel := context.WithCancel(s.T().Context())

	s.mockService.EXPECT().
		ProfilesAfter(gomock.Any(), int64(0), uint(4)).
		DoAndReturn(func(_ context.Context, _ int64, _ uint) ([]int64, error) {
			cancel()
			return nil, nil
		}).Times(1)

	done := make(chan struct{})
	go func() {
		s.processor.SetInterval(time.Hour).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.Fail("Run did not stop after context cancel")
	}
}
