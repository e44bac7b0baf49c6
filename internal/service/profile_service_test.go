package service

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	m              *repoMocks
	profileService *ProfileService
	postService    *PostService
}

func TestProfileServiceSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}

func (s *ProfileServiceTestSuite) SetupTest() {
	s.m = newRepoMocks(gomock.NewController(s.T()))

	profileService, err := NewProfileService(s.m.uow)
	s.Require().NoError(err)
	s.profileService = profileService

	postService, err := NewPostService(s.m.uow)
	s.Require().NoError(err)
	s.postService = postService
}

func (s *ProfileServiceTestSuite) TestGet() {
	profile := &domain.Profile{
		UserID:         2,
		Username:       "bob",
		BusinessName:   gofakeit.Company(),
		FollowersCount: 3,
	}
	avg := decimal.RequireFromString("12.50")
	s.m.profiles.EXPECT().FindByUsername(gomock.Any(), "bob").Return(profile, nil).Times(2)
	s.m.discounts.EXPECT().AveragePercentageByIssuer(gomock.Any(), int64(2)).Return(avg, nil).Times(2)
	s.m.follows.EXPECT().Exists(gomock.Any(), int64(1), int64(2)).Return(true, nil)

	view, err := s.profileService.Get(s.T().Context(), 1, "bob")
	s.Require().NoError(err)
	s.True(view.IsFollowing)
	s.Equal(int64(3), view.FollowersCount)
	s.True(view.AverageDiscountPercentage.Equal(avg))

	// свой профиль: подписка не проверяется.
	own, err := s.profileService.Get(s.T().Context(), 2, "bob")
	s.Require().NoError(err)
	s.False(own.IsFollowing)
}

func (s *ProfileServiceTestSuite) TestUpdateDetails() {
	about := gofakeit.Sentence(5)
	details := repoargs.ProfileDetails{About: &about}
	s.m.profiles.EXPECT().UpdateDetails(gomock.Any(), int64(1), details).
		Return(&domain.Profile{UserID: 1, About: about}, nil)

	profile, err := s.profileService.UpdateDetails(s.T().Context(), 1, details)
	s.Require().NoError(err)
	s.Equal(about, profile.About)

	blank := ""
	_, err = s.profileService.UpdateDetails(s.T().Context(), 1, repoargs.ProfileDetails{BusinessName: &blank})
	s.Require().ErrorIs(err, domain.ErrInvalidArgument)
}

func (s *ProfileServiceTestSuite) TestSearch() {
	page := repoargs.Pagination{Limit: 5}
	s.m.profiles.EXPECT().Search(gomock.Any(), "cafe", page).Return([]domain.Profile{{UserID: 4}}, nil)

	found, err := s.profileService.Search(s.T().Context(), "cafe", page)
	s.Require().NoError(err)
	s.Len(found, 1)

	empty, err := s.profileService.Search(s.T().Context(), "", page)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *ProfileServiceTestSuite) TestPosts() {
	page := repoargs.Pagination{}
	s.m.profiles.EXPECT().FindByUsername(gomock.Any(), "bob").Return(&domain.Profile{UserID: 2}, nil)
	s.m.posts.EXPECT().ListByUserID(gomock.Any(), int64(2), page).Return([]domain.Post{{ID: 1}}, nil)
	s.m.posts.EXPECT().Feed(gomock.Any(), int64(1), page).Return([]domain.Post{{ID: 1}, {ID: 2}}, nil)
	s.m.posts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	posts, err := s.postService.ListByUsername(s.T().Context(), "bob", page)
	s.Require().NoError(err)
	s.Len(posts, 1)

	feed, err := s.postService.Feed(s.T().Context(), 1, page)
	s.Require().NoError(err)
	s.Len(feed, 2)

	_, err = s.postService.Create(s.T().Context(), repoargs.PostCreate{UserID: 1})
	s.Require().ErrorIs(err, domain.ErrInvalidArgument)
}
