package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
)

// ReconcileService точка входа для восстановления счетчиков профилей по исходным таблицам.
type ReconcileService struct {
	uow         uow.UOW
	counters    *CounterSynchronizer
	profileRepo ProfileRepository
}

func NewReconcileService(u uow.UOW, counters *CounterSynchronizer) (*ReconcileService, error) {
	profileRepo, err := poolRepository[ProfileRepository](u, repoargs.ProfileRepoName)
	if err != nil {
		return nil, err
	}
	return &ReconcileService{
		uow:         u,
		counters:    counters,
		profileRepo: profileRepo,
	}, nil
}

// ProfilesAfter возвращает следующую страницу id профилей для сверки. Пустой результат означает конец прохода.
func (s *ReconcileService) ProfilesAfter(ctx context.Context, afterID int64, limit uint) ([]int64, error) {
	ids, err := s.profileRepo.ListUserIDs(ctx, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing profiles for reconcile: %w", err)
	}
	return ids, nil
}

// ReconcileProfiles пересчитывает счетчики userIDs в одной транзакции и возвращает исправленные расхождения.
func (s *ReconcileService) ReconcileProfiles(ctx context.Context, userIDs []int64) ([]domain.CounterDrift, error) {
	var drifts []domain.CounterDrift
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		drifts, err = s.counters.Reconcile(c, tx, userIDs)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("reconciling profiles: %w", txErr)
	}
	return drifts, nil
}
