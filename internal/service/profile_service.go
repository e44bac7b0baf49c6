package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
)

type ProfileService struct {
	profileRepo  ProfileRepository
	followRepo   FollowRepository
	discountRepo DiscountRepository
}

func NewProfileService(u uow.UOW) (*ProfileService, error) {
	profileRepo, err := poolRepository[ProfileRepository](u, repoargs.ProfileRepoName)
	if err != nil {
		return nil, err
	}
	followRepo, err := poolRepository[FollowRepository](u, repoargs.FollowRepoName)
	if err != nil {
		return nil, err
	}
	discountRepo, err := poolRepository[DiscountRepository](u, repoargs.DiscountRepoName)
	if err != nil {
		return nil, err
	}
	return &ProfileService{
		profileRepo:  profileRepo,
		followRepo:   followRepo,
		discountRepo: discountRepo,
	}, nil
}

// Get возвращает профиль username глазами viewerID: подписан ли зритель и средний процент скидок владельца.
func (s *ProfileService) Get(ctx context.Context, viewerID int64, username string) (*domain.ProfileView, error) {
	profile, err := s.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	view := domain.ProfileView{Profile: *profile}

	if viewerID != profile.UserID {
		view.IsFollowing, err = s.followRepo.Exists(ctx, viewerID, profile.UserID)
		if err != nil {
			return nil, fmt.Errorf("getting profile: %w", err)
		}
	}
	view.AverageDiscountPercentage, err = s.discountRepo.AveragePercentageByIssuer(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return &view, nil
}

func (s *ProfileService) GetOwn(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting own profile: %w", err)
	}
	return profile, nil
}

// UpdateDetails меняет описательные поля профиля. Счетчики через этот путь не изменяются.
func (s *ProfileService) UpdateDetails(
	ctx context.Context,
	userID int64,
	details repoargs.ProfileDetails,
) (*domain.Profile, error) {
	if details.BusinessName != nil && *details.BusinessName == "" {
		return nil, fmt.Errorf("updating profile: %w",
			domain.NewValidationError("business_name", "must not be blank"))
	}
	profile, err := s.profileRepo.UpdateDetails(ctx, userID, details)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return profile, nil
}

// Search пустой запрос возвращает пустой результат.
func (s *ProfileService) Search(
	ctx context.Context,
	query string,
	page repoargs.Pagination,
) ([]domain.Profile, error) {
	if query == "" {
		return []domain.Profile{}, nil
	}
	profiles, err := s.profileRepo.Search(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("searching profiles: %w", err)
	}
	return profiles, nil
}
