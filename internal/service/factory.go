package service

import (
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/service/psswd"
	"github.com/fsdevblog/anticrisis/pkg/uow"
)

type AppServices struct {
	UserService      *UserService
	ProfileService   *ProfileService
	FollowService    *FollowService
	DiscountService  *DiscountService
	PostService      *PostService
	ReconcileService *ReconcileService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	counters := NewCounterSynchronizer()

	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(0))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	profileService, profileServiceErr := NewProfileService(unitOfWork)
	if profileServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", profileServiceErr.Error())
	}

	followService, followServiceErr := NewFollowService(unitOfWork, counters)
	if followServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", followServiceErr.Error())
	}

	discountService, discountServiceErr := NewDiscountService(unitOfWork, counters)
	if discountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", discountServiceErr.Error())
	}

	postService, postServiceErr := NewPostService(unitOfWork)
	if postServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", postServiceErr.Error())
	}

	reconcileService, reconcileServiceErr := NewReconcileService(unitOfWork, counters)
	if reconcileServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", reconcileServiceErr.Error())
	}

	return &AppServices{
		UserService:      userService,
		ProfileService:   profileService,
		FollowService:    followService,
		DiscountService:  discountService,
		PostService:      postService,
		ReconcileService: reconcileService,
	}, nil
}
