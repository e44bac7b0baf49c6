package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/internal/service/tokens"
	"github.com/fsdevblog/anticrisis/pkg/uow"
)

const JWTTokenExpire = 24 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
	hasher         PasswordHasher
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := poolRepository[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
		hasher:         hasher,
	}, nil
}

type RegisterUserArgs struct {
	Username     string
	Password     string
	BusinessName string
}

// Register создает юзера и его пустой профиль в одной транзакции. После успешного создания генерирует jwt token.
// Возвращает 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	businessName := strings.TrimSpace(args.BusinessName)
	if businessName == "" {
		return nil, "", fmt.Errorf("registering user: %w",
			domain.NewValidationError("business_name", "must not be blank"))
	}
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}
	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := txRepository[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		profileRepo, profileRepoErr := txRepository[ProfileRepository](tx, repoargs.ProfileRepoName)
		if profileRepoErr != nil {
			return profileRepoErr
		}

		var userErr, tokenErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Username: args.Username,
			Password: password,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		if _, err := profileRepo.Create(c, repoargs.ProfileCreate{
			UserID:       user.ID,
			BusinessName: businessName,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateUserJWT(user.ID, user.Username, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login проверяет пароль юзера и выдает новый jwt token. Неизвестный юзер - domain.ErrRecordNotFound,
// неверный пароль - domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	if err != nil {
		return nil, "", fmt.Errorf("login user: %w", err)
	}
	if !s.hasher.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", fmt.Errorf("login user: %w", domain.ErrPasswordMissMatch)
	}
	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Username, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user: %w", tokenErr)
	}
	return user, token, nil
}
