package service

import (
	"context"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, args repoargs.ProfileCreate) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	FindByUsername(ctx context.Context, username string) (*domain.Profile, error)
	UpdateDetails(ctx context.Context, userID int64, details repoargs.ProfileDetails) (*domain.Profile, error)
	Search(ctx context.Context, query string, page repoargs.Pagination) ([]domain.Profile, error)

	AddToCounter(ctx context.Context, userID int64, field domain.CounterField, delta int64) error
	LockForUpdate(ctx context.Context, userIDs []int64) error
	SetCounter(ctx context.Context, userID int64, field domain.CounterField, value int64) error
	Recount(ctx context.Context, userIDs []int64) ([]domain.CounterDrift, error)
	ListUserIDs(ctx context.Context, afterID int64, limit uint) ([]int64, error)
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID int64) (*domain.Follow, error)
	Delete(ctx context.Context, followerID, followingID int64) error
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
}

type DiscountRepository interface {
	Create(ctx context.Context, args repoargs.DiscountCreate) (*domain.Discount, error)
	GetByID(ctx context.Context, id int64) (*domain.DiscountView, error)
	List(ctx context.Context, filter repoargs.DiscountFilter, page repoargs.Pagination) ([]domain.DiscountView, error)
	IncrementUsed(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Discount, error)
	CountUsedByIssuer(ctx context.Context, issuerID int64) (int64, error)
	CountReceivedByRecipient(ctx context.Context, recipientID int64) (int64, error)
	AveragePercentageByIssuer(ctx context.Context, issuerID int64) (decimal.Decimal, error)
}

type PostRepository interface {
	Create(ctx context.Context, args repoargs.PostCreate) (*domain.Post, error)
	ListByUserID(ctx context.Context, userID int64, page repoargs.Pagination) ([]domain.Post, error)
	Feed(ctx context.Context, followerID int64, page repoargs.Pagination) ([]domain.Post, error)
}
