package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
)

type PostService struct {
	postRepo    PostRepository
	profileRepo ProfileRepository
}

func NewPostService(u uow.UOW) (*PostService, error) {
	postRepo, err := poolRepository[PostRepository](u, repoargs.PostRepoName)
	if err != nil {
		return nil, err
	}
	profileRepo, err := poolRepository[ProfileRepository](u, repoargs.ProfileRepoName)
	if err != nil {
		return nil, err
	}
	return &PostService{postRepo: postRepo, profileRepo: profileRepo}, nil
}

func (s *PostService) Create(ctx context.Context, args repoargs.PostCreate) (*domain.Post, error) {
	if args.Description == "" && args.ImageURL == "" {
		return nil, fmt.Errorf("creating post: %w",
			domain.NewValidationError("description", "post must have a description or an image"))
	}
	post, err := s.postRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return post, nil
}

func (s *PostService) ListOwn(ctx context.Context, userID int64, page repoargs.Pagination) ([]domain.Post, error) {
	posts, err := s.postRepo.ListByUserID(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("listing own posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) ListByUsername(
	ctx context.Context,
	username string,
	page repoargs.Pagination,
) ([]domain.Post, error) {
	profile, err := s.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing posts of %s: %w", username, err)
	}
	posts, err := s.postRepo.ListByUserID(ctx, profile.UserID, page)
	if err != nil {
		return nil, fmt.Errorf("listing posts of %s: %w", username, err)
	}
	return posts, nil
}

// Feed посты юзеров, на которых подписан userID, от новых к старым.
func (s *PostService) Feed(ctx context.Context, userID int64, page repoargs.Pagination) ([]domain.Post, error) {
	posts, err := s.postRepo.Feed(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("building feed: %w", err)
	}
	return posts, nil
}
