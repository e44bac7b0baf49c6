package pgrepo

import (
	"context"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type FollowRepository struct {
	conn uow.DBTX
}

func NewFollowRepository(conn uow.DBTX) *FollowRepository {
	return &FollowRepository{conn: conn}
}

// Create создает подписку. Повторная подписка на того же юзера возвращает domain.ErrDuplicateKey,
// подписка на себя - domain.ErrInvalidArgument. Конкурентные вставки одной пары сериализуются уникальным
// индексом: проигравшая транзакция дожидается победителя и получает domain.ErrDuplicateKey.
func (f *FollowRepository) Create(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	var follow domain.Follow
	err := f.conn.QueryRow(ctx,
		`INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)
		RETURNING follower_id, following_id, created_at`,
		followerID, followingID,
	).Scan(&follow.FollowerID, &follow.FollowingID, &follow.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating follow %d -> %d", followerID, followingID)
	}
	return &follow, nil
}

// Delete удаляет подписку. Если подписки не было, возвращает domain.ErrRecordNotFound.
func (f *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	tag, err := f.conn.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID,
	)
	if err != nil {
		return convertErr(err, "deleting follow %d -> %d", followerID, followingID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting follow %d -> %d", followerID, followingID)
	}
	return nil
}

func (f *FollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	var exists bool
	if err := f.conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`,
		followerID, followingID,
	).Scan(&exists); err != nil {
		return false, convertErr(err, "checking follow %d -> %d", followerID, followingID)
	}
	return exists, nil
}
