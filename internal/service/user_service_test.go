package service

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/internal/service/mocks"
	"github.com/fsdevblog/anticrisis/internal/service/tokens"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	m           *repoMocks
	mockPsswd   *mocks.MockPasswordHasher
	jwtSecret   []byte
	userService *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.m = newRepoMocks(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)
	s.jwtSecret = []byte("secret")

	// Инициализация сервиса.
	userService, servErr := NewUserService(s.m.uow, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestLogin() {
	savedUserUsername := "test"
	// аргументы вызовов для кейсов ниже.
	argsOk := LoginUserArgs{
		Username: savedUserUsername,
		Password: "<PASSWORD>",
	}
	argsWrongUsername := LoginUserArgs{
		Username: "wrong",
		Password: "<PASSWORD>",
	}
	argsWrongPass := LoginUserArgs{
		Username: savedUserUsername,
		Password: "wrong pass",
	}

	validHashPassword := "hash ok"

	savedUser := domain.User{
		ID:                1,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Username:          savedUserUsername,
		EncryptedPassword: validHashPassword,
	}

	// Мок для сравнения пароля.
	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	// Мок репозитория.
	s.m.users.EXPECT().
		FindUserByUsername(gomock.Any(), savedUserUsername).
		Return(&savedUser, nil).Times(2)

	s.m.users.EXPECT().
		FindUserByUsername(gomock.Any(), argsWrongUsername.Username).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: argsOk, wantErr: nil},
		{name: "wrong username", args: argsWrongUsername, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Equal(&savedUser, user)

				claims, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(savedUser.ID, claims.ID)
				s.Equal(savedUser.Username, claims.Username)
			}
		})
	}
}

func (s *UserServiceTestSuite) TestRegister() {
	argsOk := RegisterUserArgs{
		Username:     "validUser",
		Password:     "<PASSWORD>",
		BusinessName: gofakeit.Company(),
	}
	argsDuplicateUsername := RegisterUserArgs{
		Username:     "duplicateUser",
		Password:     "<PASSWORD>",
		BusinessName: gofakeit.Company(),
	}

	validHashedPassword := "hashedPassword"

	createdUser := domain.User{
		ID:                1,
		Username:          argsOk.Username,
		EncryptedPassword: validHashedPassword,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	// Мок хеширования пароля.
	s.mockPsswd.EXPECT().HashPassword(gomock.Any()).Return(validHashedPassword, nil).Times(2)

	// Мок репозиториев.
	s.m.users.EXPECT().
		CreateUser(gomock.Any(), repoargs.CreateUser{
			Username: argsOk.Username,
			Password: validHashedPassword,
		}).
		Return(&createdUser, nil)
	s.m.profiles.EXPECT().
		Create(gomock.Any(), repoargs.ProfileCreate{UserID: createdUser.ID, BusinessName: argsOk.BusinessName}).
		Return(&domain.Profile{UserID: createdUser.ID}, nil)

	s.m.users.EXPECT().
		CreateUser(gomock.Any(), repoargs.CreateUser{
			Username: argsDuplicateUsername.Username,
			Password: validHashedPassword,
		}).
		Return(nil, domain.ErrDuplicateKey)

	// Мок uow.
	s.m.expectTx(2)

	cases := []struct {
		name      string
		args      RegisterUserArgs
		wantErr   error
		wantUser  *domain.User
		wantToken bool
	}{
		{
			name:      "ok",
			args:      argsOk,
			wantUser:  &createdUser,
			wantToken: true,
		},
		{
			name:    "duplicate username",
			args:    argsDuplicateUsername,
			wantErr: domain.ErrDuplicateKey,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Register(s.T().Context(), t.args)

			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantUser, user)

			if t.wantToken {
				s.Require().NotEmpty(tokenStr)

				claims, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(user.ID, claims.ID)
			} else {
				s.Empty(tokenStr)
			}
		})
	}
}

func (s *UserServiceTestSuite) TestRegister_BlankBusinessName() {
	s.mockPsswd.EXPECT().HashPassword(gomock.Any()).Times(0)
	s.m.expectTx(0)

	_, _, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
		Username:     "user",
		Password:     "password",
		BusinessName: "   ",
	})
	s.Require().ErrorIs(err, domain.ErrInvalidArgument)
}
