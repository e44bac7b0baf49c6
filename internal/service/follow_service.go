package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
)

type FollowService struct {
	uow        uow.UOW
	counters   *CounterSynchronizer
	followRepo FollowRepository
}

func NewFollowService(u uow.UOW, counters *CounterSynchronizer) (*FollowService, error) {
	followRepo, err := poolRepository[FollowRepository](u, repoargs.FollowRepoName)
	if err != nil {
		return nil, err
	}
	return &FollowService{
		uow:        u,
		counters:   counters,
		followRepo: followRepo,
	}, nil
}

// Follow подписывает followerID на юзера targetUsername. Повторная подписка возвращает
// domain.ErrAlreadyFollowing и не трогает счетчики.
func (s *FollowService) Follow(ctx context.Context, followerID int64, targetUsername string) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		targetID, resolveErr := s.resolveTarget(c, tx, followerID, targetUsername)
		if resolveErr != nil {
			return resolveErr
		}
		followRepo, repoErr := txRepository[FollowRepository](tx, repoargs.FollowRepoName)
		if repoErr != nil {
			return repoErr
		}

		if _, err := followRepo.Create(c, followerID, targetID); err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return domain.ErrAlreadyFollowing
			}
			return err //nolint:wrapcheck
		}
		return s.counters.FollowCreated(c, tx, followerID, targetID)
	})
	if txErr != nil {
		return fmt.Errorf("following %s: %w", targetUsername, txErr)
	}
	return nil
}

// Unfollow отписывает followerID от юзера targetUsername. Если подписки не было, возвращает
// domain.ErrNotFollowing и не трогает счетчики.
func (s *FollowService) Unfollow(ctx context.Context, followerID int64, targetUsername string) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		targetID, resolveErr := s.resolveTarget(c, tx, followerID, targetUsername)
		if resolveErr != nil {
			return resolveErr
		}
		followRepo, repoErr := txRepository[FollowRepository](tx, repoargs.FollowRepoName)
		if repoErr != nil {
			return repoErr
		}

		if err := followRepo.Delete(c, followerID, targetID); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.ErrNotFollowing
			}
			return err //nolint:wrapcheck
		}
		return s.counters.FollowDeleted(c, tx, followerID, targetID)
	})
	if txErr != nil {
		return fmt.Errorf("unfollowing %s: %w", targetUsername, txErr)
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	if followerID == followingID {
		return false, nil
	}
	exists, err := s.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("checking follow: %w", err)
	}
	return exists, nil
}

// resolveTarget находит id юзера по username и запрещает подписку на себя.
func (s *FollowService) resolveTarget(
	ctx context.Context,
	tx uow.TX,
	followerID int64,
	targetUsername string,
) (int64, error) {
	profileRepo, repoErr := txRepository[ProfileRepository](tx, repoargs.ProfileRepoName)
	if repoErr != nil {
		return 0, repoErr
	}
	target, err := profileRepo.FindByUsername(ctx, targetUsername)
	if err != nil {
		return 0, fmt.Errorf("finding target: %w", err)
	}
	if target.UserID == followerID {
		return 0, domain.NewValidationError("username", "cannot follow yourself")
	}
	return target.UserID, nil
}
