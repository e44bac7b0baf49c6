package pgrepo

import (
	"context"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const postViewColumns = `po.id, po.created_at, po.user_id, u.username, p.business_name, po.description,
	po.image_url, po.likes_count`

type PostRepository struct {
	conn uow.DBTX
}

func NewPostRepository(conn uow.DBTX) *PostRepository {
	return &PostRepository{conn: conn}
}

func (r *PostRepository) Create(ctx context.Context, args repoargs.PostCreate) (*domain.Post, error) {
	post, err := scanPost(r.conn.QueryRow(ctx,
		`WITH po AS (
			INSERT INTO posts (user_id, description, image_url) VALUES ($1, $2, $3) RETURNING *
		)
		SELECT `+postViewColumns+` FROM po
			JOIN users u ON u.id = po.user_id
			JOIN profiles p ON p.user_id = po.user_id`,
		args.UserID, args.Description, args.ImageURL,
	))
	if err != nil {
		return nil, convertErr(err, "creating post of user %d", args.UserID)
	}
	return post, nil
}

// ListByUserID посты юзера от новых к старым.
func (r *PostRepository) ListByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Pagination,
) ([]domain.Post, error) {
	limit, offset, pageErr := limitOffset(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting pagination")
	}
	rows, err := r.conn.Query(ctx,
		`SELECT `+postViewColumns+` FROM posts po
			JOIN users u ON u.id = po.user_id
			JOIN profiles p ON p.user_id = po.user_id
		WHERE po.user_id = $1
		ORDER BY po.created_at DESC, po.id DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing posts of user %d", userID)
	}
	return collectPosts(rows, "listing posts of user %d", userID)
}

// Feed посты юзеров, на которых подписан followerID, от новых к старым.
func (r *PostRepository) Feed(
	ctx context.Context,
	followerID int64,
	page repoargs.Pagination,
) ([]domain.Post, error) {
	limit, offset, pageErr := limitOffset(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting pagination")
	}
	rows, err := r.conn.Query(ctx,
		`SELECT `+postViewColumns+` FROM posts po
			JOIN follows f ON f.following_id = po.user_id AND f.follower_id = $1
			JOIN users u ON u.id = po.user_id
			JOIN profiles p ON p.user_id = po.user_id
		ORDER BY po.created_at DESC, po.id DESC
		LIMIT $2 OFFSET $3`,
		followerID, limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "building feed of user %d", followerID)
	}
	return collectPosts(rows, "building feed of user %d", followerID)
}

func collectPosts(rows pgx.Rows, format string, formatArgs ...any) ([]domain.Post, error) {
	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Post, error) {
		post, scanErr := scanPost(row)
		if scanErr != nil {
			return domain.Post{}, scanErr
		}
		return *post, nil
	})
	if err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	return posts, nil
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	if err := row.Scan(
		&post.ID,
		&post.CreatedAt,
		&post.UserID,
		&post.Username,
		&post.BusinessName,
		&post.Description,
		&post.ImageURL,
		&post.LikesCount,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &post, nil
}
