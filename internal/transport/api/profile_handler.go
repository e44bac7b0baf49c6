package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvs ProfileServicer
	followSvs  FollowServicer
}

func NewProfileHandler(profileSvs ProfileServicer, followSvs FollowServicer) *ProfileHandler {
	return &ProfileHandler{
		profileSvs: profileSvs,
		followSvs:  followSvs,
	}
}

type ProfileResponse struct {
	Username                  string  `json:"username"`
	BusinessName              string  `json:"business_name"`
	About                     string  `json:"about"`
	Phone                     string  `json:"phone"`
	Email                     string  `json:"email"`
	Website                   string  `json:"website"`
	Address                   string  `json:"address"`
	LocationCoordinates       string  `json:"location_coordinates"`
	AvatarURL                 string  `json:"avatar_url"`
	BannerURL                 string  `json:"banner_url"`
	FollowersCount            int64   `json:"followers_count"`
	FollowingsCount           int64   `json:"followings_count"`
	DiscountsReceivedCount    int64   `json:"discounts_received_count"`
	DiscountsUsedCount        int64   `json:"discounts_used_count"`
	IsFollowing               *bool   `json:"is_following,omitempty"`
	AverageDiscountPercentage *string `json:"average_discount_percentage,omitempty"`
}

// ProfileDetailsParams частичное обновление профиля: отсутствующие поля не меняются.
type ProfileDetailsParams struct {
	BusinessName        *string `binding:"omitempty,min=1,max=255"   json:"business_name"`
	About               *string `binding:"omitempty,max=5000"        json:"about"`
	Phone               *string `binding:"omitempty,max=15"          json:"phone"`
	Email               *string `binding:"omitempty,max=254,email"   json:"email"`
	Website             *string `binding:"omitempty,max=200,url"     json:"website"`
	Address             *string `binding:"omitempty,max=1000"        json:"address"`
	LocationCoordinates *string `binding:"omitempty,max=100"         json:"location_coordinates"`
	AvatarURL           *string `binding:"omitempty,max=2048,url"    json:"avatar_url"`
	BannerURL           *string `binding:"omitempty,max=2048,url"    json:"banner_url"`
}

// Me GET RouteGroup + MyProfileRoute.
func (h *ProfileHandler) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.profileSvs.GetOwn(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// UpdateMe PATCH RouteGroup + MyProfileRoute. Счетчики через этот путь не меняются.
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var params ProfileDetailsParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.profileSvs.UpdateDetails(ctx, getUserIDFromContext(c), repoargs.ProfileDetails{
		BusinessName:        params.BusinessName,
		About:               params.About,
		Phone:               params.Phone,
		Email:               params.Email,
		Website:             params.Website,
		Address:             params.Address,
		LocationCoordinates: params.LocationCoordinates,
		AvatarURL:           params.AvatarURL,
		BannerURL:           params.BannerURL,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// Show GET RouteGroup + ProfileRoute.
func (h *ProfileHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.profileSvs.Get(ctx, getUserIDFromContext(c), c.Param("username"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := newProfileResponse(&view.Profile)
	average := view.AverageDiscountPercentage.StringFixed(2)
	response.IsFollowing = &view.IsFollowing
	response.AverageDiscountPercentage = &average
	c.JSON(http.StatusOK, response)
}

type SearchParams struct {
	PaginationParams
	Query string `binding:"max=255" form:"q"`
}

// Search GET RouteGroup + SearchRoute. Поиск профилей по названию бизнеса.
func (h *ProfileHandler) Search(c *gin.Context) {
	var params SearchParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profiles, err := h.profileSvs.Search(ctx, params.Query, params.toArgs())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		response[i] = newProfileResponse(&profiles[i])
	}
	c.JSON(http.StatusOK, response)
}

// Follow POST RouteGroup + FollowRoute.
func (h *ProfileHandler) Follow(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.followSvs.Follow(ctx, getUserIDFromContext(c), c.Param("username")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// Unfollow DELETE RouteGroup + FollowRoute.
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.followSvs.Unfollow(ctx, getUserIDFromContext(c), c.Param("username")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func newProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		Username:               p.Username,
		BusinessName:           p.BusinessName,
		About:                  p.About,
		Phone:                  p.Phone,
		Email:                  p.Email,
		Website:                p.Website,
		Address:                p.Address,
		LocationCoordinates:    p.LocationCoordinates,
		AvatarURL:              p.AvatarURL,
		BannerURL:              p.BannerURL,
		FollowersCount:         p.FollowersCount,
		FollowingsCount:        p.FollowingsCount,
		DiscountsReceivedCount: p.DiscountsReceivedCount,
		DiscountsUsedCount:     p.DiscountsUsedCount,
	}
}
