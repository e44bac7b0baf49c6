package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
)

// CounterSynchronizer единственный, кто пишет денормализованные счетчики профилей. Все методы работают
// внутри транзакции вызывающего и должны вызываться после записи строки, на которую реагируют. Любая ошибка
// возвращается как есть, чтобы uow.Do откатил транзакцию вместе с исходной записью.
type CounterSynchronizer struct{}

func NewCounterSynchronizer() *CounterSynchronizer {
	return &CounterSynchronizer{}
}

// ApplyDeltas атомарно применяет изменения счетчиков (c = c + delta). Изменения применяются по возрастанию
// (UserID, Field), поэтому две транзакции, затрагивающие одну пару профилей, блокируют строки в одинаковом
// порядке и не попадают в deadlock. Нулевые изменения пропускаются.
func (s *CounterSynchronizer) ApplyDeltas(ctx context.Context, tx uow.TX, deltas ...repoargs.CounterDelta) error {
	profileRepo, repoErr := txRepository[ProfileRepository](tx, repoargs.ProfileRepoName)
	if repoErr != nil {
		return fmt.Errorf("applying counter deltas: %w", repoErr)
	}

	ordered := slices.Clone(deltas)
	slices.SortStableFunc(ordered, func(a, b repoargs.CounterDelta) int {
		return cmp.Or(cmp.Compare(a.UserID, b.UserID), cmp.Compare(a.Field, b.Field))
	})

	for _, d := range ordered {
		if d.Delta == 0 {
			continue
		}
		if err := profileRepo.AddToCounter(ctx, d.UserID, d.Field, d.Delta); err != nil {
			return fmt.Errorf("applying counter deltas: %w", err)
		}
	}
	return nil
}

// FollowCreated +1 подписок подписчика и +1 подписчиков цели.
func (s *CounterSynchronizer) FollowCreated(ctx context.Context, tx uow.TX, followerID, followingID int64) error {
	return s.ApplyDeltas(ctx, tx, followDeltas(followerID, followingID, 1)...)
}

// FollowDeleted обратное FollowCreated.
func (s *CounterSynchronizer) FollowDeleted(ctx context.Context, tx uow.TX, followerID, followingID int64) error {
	return s.ApplyDeltas(ctx, tx, followDeltas(followerID, followingID, -1)...)
}

// DiscountIssued +1 полученных скидок получателя.
func (s *CounterSynchronizer) DiscountIssued(ctx context.Context, tx uow.TX, recipientID int64) error {
	return s.ApplyDeltas(ctx, tx, repoargs.CounterDelta{
		UserID: recipientID,
		Field:  domain.CounterDiscountsReceived,
		Delta:  1,
	})
}

// RecountDiscountsUsed пересчитывает discounts_used_count эмитента по таблице скидок. "Использована" -
// производный признак (redeem_used > 0), поэтому счетчик не инкрементируется, а пересчитывается.
// Сначала блокируется строка профиля, затем отдельной командой считается агрегат: так подсчет видит все
// транзакции, которые меняли этот счетчик и успели зафиксироваться до нас.
func (s *CounterSynchronizer) RecountDiscountsUsed(ctx context.Context, tx uow.TX, issuerID int64) error {
	profileRepo, repoErr := txRepository[ProfileRepository](tx, repoargs.ProfileRepoName)
	if repoErr != nil {
		return fmt.Errorf("recounting used discounts: %w", repoErr)
	}
	discountRepo, repoErr := txRepository[DiscountRepository](tx, repoargs.DiscountRepoName)
	if repoErr != nil {
		return fmt.Errorf("recounting used discounts: %w", repoErr)
	}

	if err := profileRepo.LockForUpdate(ctx, []int64{issuerID}); err != nil {
		return fmt.Errorf("recounting used discounts: %w", err)
	}
	used, countErr := discountRepo.CountUsedByIssuer(ctx, issuerID)
	if countErr != nil {
		return fmt.Errorf("recounting used discounts: %w", countErr)
	}
	if err := profileRepo.SetCounter(ctx, issuerID, domain.CounterDiscountsUsed, used); err != nil {
		return fmt.Errorf("recounting used discounts: %w", err)
	}
	return nil
}

// Reconcile пересчитывает все счетчики профилей userIDs по исходным таблицам и исправляет расхождения.
// Возвращает найденные расхождения.
func (s *CounterSynchronizer) Reconcile(
	ctx context.Context,
	tx uow.TX,
	userIDs []int64,
) ([]domain.CounterDrift, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	profileRepo, repoErr := txRepository[ProfileRepository](tx, repoargs.ProfileRepoName)
	if repoErr != nil {
		return nil, fmt.Errorf("reconciling counters: %w", repoErr)
	}

	ids := slices.Clone(userIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	if err := profileRepo.LockForUpdate(ctx, ids); err != nil {
		return nil, fmt.Errorf("reconciling counters: %w", err)
	}
	drifts, err := profileRepo.Recount(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("reconciling counters: %w", err)
	}
	return drifts, nil
}

func followDeltas(followerID, followingID, delta int64) []repoargs.CounterDelta {
	return []repoargs.CounterDelta{
		{UserID: followerID, Field: domain.CounterFollowings, Delta: delta},
		{UserID: followingID, Field: domain.CounterFollowers, Delta: delta},
	}
}
