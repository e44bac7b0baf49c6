package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type ProfileServicer interface {
	Get(ctx context.Context, viewerID int64, username string) (*domain.ProfileView, error)
	GetOwn(ctx context.Context, userID int64) (*domain.Profile, error)
	UpdateDetails(ctx context.Context, userID int64, details repoargs.ProfileDetails) (*domain.Profile, error)
	Search(ctx context.Context, query string, page repoargs.Pagination) ([]domain.Profile, error)
}

type FollowServicer interface {
	Follow(ctx context.Context, followerID int64, targetUsername string) error
	Unfollow(ctx context.Context, followerID int64, targetUsername string) error
}

type DiscountServicer interface {
	Issue(ctx context.Context, args service.IssueDiscountArgs) (*domain.DiscountView, error)
	Get(ctx context.Context, viewerID, discountID int64) (*domain.DiscountView, error)
	List(ctx context.Context, args service.ListDiscountsArgs) ([]domain.DiscountView, error)
	Redeem(ctx context.Context, args service.RedeemDiscountArgs) (*domain.DiscountView, error)
}

type PostServicer interface {
	Create(ctx context.Context, args repoargs.PostCreate) (*domain.Post, error)
	ListOwn(ctx context.Context, userID int64, page repoargs.Pagination) ([]domain.Post, error)
	ListByUsername(ctx context.Context, username string, page repoargs.Pagination) ([]domain.Post, error)
	Feed(ctx context.Context, userID int64, page repoargs.Pagination) ([]domain.Post, error)
}
