package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	Username     string `binding:"required,alphanum,min=3,max=150"      json:"username"`
	Password     string `binding:"required,min=8,max_bytes=72"          json:"password"`
	BusinessName string `binding:"required,min=1,max=255,max_bytes=1020" json:"business_name"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register POST RouteGroup + SignUpRoute. Регистрирует юзера вместе с профилем и аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Username:     params.Username,
		Password:     params.Password,
		BusinessName: params.BusinessName,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			abortPublic(c, http.StatusConflict, "user with this username already exists", createErr)
			return
		}
		abortWithServiceError(c, createErr)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusCreated, newAuthResponse(user, jwtToken))
}

type UserLoginParams struct {
	Username string `binding:"required,max=150"        json:"username"`
	Password string `binding:"required,max_bytes=72"   json:"password"`
}

// Login POST RouteGroup + SignInRoute. Аутентификация по паре логин/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			abortPublic(c, http.StatusUnauthorized, "invalid credentials", err)
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, newAuthResponse(user, token))
}

func newAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User: UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		},
	}
}
