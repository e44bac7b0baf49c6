//go:build integration

package pgrepo

import (
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/fsdevblog/anticrisis"
	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/logger"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	pool      *pgxpool.Pool
	users     *UserRepository
	profiles  *ProfileRepository
	follows   *FollowRepository
	discounts *DiscountRepository
	posts     *PostRepository
}

func TestRepositorySuite(t *testing.T) {
	if os.Getenv("DATABASE_URI") == "" {
		t.Skip("DATABASE_URI is not set")
	}
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupSuite() {
	migrations, subErr := fs.Sub(anticrisis.MigrationsFS, "migrations")
	s.Require().NoError(subErr)

	pool, err := Connect(s.T().Context(), migrations, os.Getenv("DATABASE_URI"), logger.New(io.Discard, "error"))
	s.Require().NoError(err)
	s.pool = pool

	s.users = NewUserRepository(pool)
	s.profiles = NewProfileRepository(pool)
	s.follows = NewFollowRepository(pool)
	s.discounts = NewDiscountRepository(pool)
	s.posts = NewPostRepository(pool)
}

func (s *RepositoryTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *RepositoryTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.T().Context(), `TRUNCATE users RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) createProfile(username, businessName string) *domain.Profile {
	user, err := s.users.CreateUser(s.T().Context(), repoargs.CreateUser{Username: username, Password: "hash"})
	s.Require().NoError(err)
	profile, err := s.profiles.Create(s.T().Context(), repoargs.ProfileCreate{UserID: user.ID, BusinessName: businessName})
	s.Require().NoError(err)
	return profile
}

func (s *RepositoryTestSuite) TestDuplicateUsername() {
	s.createProfile("alice", "Alice Coffee")
	_, err := s.users.CreateUser(s.T().Context(), repoargs.CreateUser{Username: "alice", Password: "hash"})
	s.ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *RepositoryTestSuite) TestFollowLifecycle() {
	ctx := s.T().Context()
	a, b := s.createProfile("alice", "Alice Coffee"), s.createProfile("bob", "Bob Bakery")

	_, err := s.follows.Create(ctx, a.UserID, b.UserID)
	s.Require().NoError(err)
	_, err = s.follows.Create(ctx, a.UserID, b.UserID)
	s.ErrorIs(err, domain.ErrDuplicateKey)
	_, err = s.follows.Create(ctx, a.UserID, a.UserID)
	s.ErrorIs(err, domain.ErrInvalidArgument)

	exists, err := s.follows.Exists(ctx, a.UserID, b.UserID)
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.follows.Delete(ctx, a.UserID, b.UserID))
	s.ErrorIs(s.follows.Delete(ctx, a.UserID, b.UserID), domain.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestCounterNeverNegative() {
	ctx := s.T().Context()
	a := s.createProfile("alice", "Alice Coffee")

	s.Require().NoError(s.profiles.AddToCounter(ctx, a.UserID, domain.CounterFollowers, 1))
	s.ErrorIs(s.profiles.AddToCounter(ctx, a.UserID, domain.CounterFollowers, -2), domain.ErrInvalidArgument)
	s.ErrorIs(s.profiles.AddToCounter(ctx, 999, domain.CounterFollowers, 1), domain.ErrRecordNotFound)

	profile, err := s.profiles.FindByUserID(ctx, a.UserID)
	s.Require().NoError(err)
	s.Equal(int64(1), profile.FollowersCount)
}

func (s *RepositoryTestSuite) TestDiscountLedger() {
	ctx := s.T().Context()
	issuer := s.createProfile("alice", "Alice Coffee")
	bakery := s.createProfile("bob", "Bob Bakery")
	florist := s.createProfile("carol", "Carol Flowers")

	first, err := s.discounts.Create(ctx, repoargs.DiscountCreate{
		IssuerID:    issuer.UserID,
		RecipientID: bakery.UserID,
		Percentage:  decimal.RequireFromString("20"),
		RedeemLimit: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)
	_, err = s.discounts.Create(ctx, repoargs.DiscountCreate{
		IssuerID:    issuer.UserID,
		RecipientID: florist.UserID,
		Percentage:  decimal.RequireFromString("10.5"),
		RedeemLimit: decimal.NewFromInt(50),
	})
	s.Require().NoError(err)

	issued, err := s.discounts.List(ctx, repoargs.DiscountFilter{
		UserID:    issuer.UserID,
		Direction: domain.DiscountsIssued,
	}, repoargs.Pagination{})
	s.Require().NoError(err)
	s.Require().Len(issued, 2)
	s.Equal("carol", issued[0].RecipientUsername)

	filtered, err := s.discounts.List(ctx, repoargs.DiscountFilter{
		UserID:    issuer.UserID,
		Direction: domain.DiscountsIssued,
		Query:     "BAKERY",
	}, repoargs.Pagination{})
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal(first.ID, filtered[0].ID)

	received, err := s.discounts.List(ctx, repoargs.DiscountFilter{
		UserID:    bakery.UserID,
		Direction: domain.DiscountsReceived,
	}, repoargs.Pagination{Limit: 1})
	s.Require().NoError(err)
	s.Len(received, 1)

	_, err = s.discounts.IncrementUsed(ctx, first.ID, decimal.NewFromInt(40))
	s.Require().NoError(err)
	_, err = s.discounts.IncrementUsed(ctx, first.ID, decimal.NewFromInt(70))
	s.ErrorIs(err, domain.ErrLimitExceeded)
	_, err = s.discounts.IncrementUsed(ctx, 999, decimal.NewFromInt(1))
	s.ErrorIs(err, domain.ErrRecordNotFound)

	for _, amount := range []string{"-10", "0", "0.001"} {
		_, err = s.discounts.IncrementUsed(ctx, first.ID, decimal.RequireFromString(amount))
		s.ErrorIs(err, domain.ErrInvalidArgument, amount)
	}
	unchanged, err := s.discounts.GetByID(ctx, first.ID)
	s.Require().NoError(err)
	s.Equal("40.00", unchanged.RedeemUsed.StringFixed(2))

	used, err := s.discounts.CountUsedByIssuer(ctx, issuer.UserID)
	s.Require().NoError(err)
	s.Equal(int64(1), used)

	average, err := s.discounts.AveragePercentageByIssuer(ctx, issuer.UserID)
	s.Require().NoError(err)
	s.Equal("15.25", average.StringFixed(2))

	none, err := s.discounts.AveragePercentageByIssuer(ctx, bakery.UserID)
	s.Require().NoError(err)
	s.True(none.IsZero())
}

func (s *RepositoryTestSuite) TestSearchAndFeed() {
	ctx := s.T().Context()
	a := s.createProfile("alice", "Alice Coffee")
	b := s.createProfile("bob", "Bob's 100% Bakery")

	found, err := s.profiles.Search(ctx, "100%", repoargs.Pagination{})
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(b.UserID, found[0].UserID)

	_, err = s.posts.Create(ctx, repoargs.PostCreate{UserID: b.UserID, Description: "fresh bread"})
	s.Require().NoError(err)

	feed, err := s.posts.Feed(ctx, a.UserID, repoargs.Pagination{})
	s.Require().NoError(err)
	s.Empty(feed)

	_, err = s.follows.Create(ctx, a.UserID, b.UserID)
	s.Require().NoError(err)
	feed, err = s.posts.Feed(ctx, a.UserID, repoargs.Pagination{})
	s.Require().NoError(err)
	s.Require().Len(feed, 1)
	s.Equal("bob", feed[0].Username)
}
