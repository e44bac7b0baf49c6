package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/logger"
	"github.com/fsdevblog/anticrisis/internal/service"
	"github.com/fsdevblog/anticrisis/internal/service/tokens"
	"github.com/fsdevblog/anticrisis/internal/transport/api/mocks"
	"github.com/fsdevblog/anticrisis/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, err := New(RouterArgs{
		Logger:       logger.New(io.Discard, "error"),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *AuthHandlerTestSuite) post(url string, payload any, opts ...func(*testutils.RequestOptions)) *http.Response {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    url,
		Body:   payload,
	}, opts...)
	s.Require().NoError(err)
	return res
}

func (s *AuthHandlerTestSuite) TestRegister() {
	validParams := UserRegisterParams{
		Username:     "baker",
		Password:     gofakeit.Password(true, true, true, false, false, 12),
		BusinessName: gofakeit.Company(),
	}
	duplicateParams := validParams
	duplicateParams.Username = "taken"

	s.mockUserService.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			Username:     validParams.Username,
			Password:     validParams.Password,
			BusinessName: validParams.BusinessName,
		}).
		Return(&domain.User{ID: 1, Username: validParams.Username}, "jwt-token", nil).Times(1)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			Username:     duplicateParams.Username,
			Password:     duplicateParams.Password,
			BusinessName: duplicateParams.BusinessName,
		}).
		Return(nil, "", fmt.Errorf("register: %w", domain.ErrDuplicateKey)).Times(1)

	cases := []struct {
		name       string
		params     UserRegisterParams
		wantStatus int
	}{
		{name: "all ok", params: validParams, wantStatus: http.StatusCreated},
		{name: "duplicate username", params: duplicateParams, wantStatus: http.StatusConflict},
		{
			name:       "short password",
			params:     UserRegisterParams{Username: "baker", Password: "123", BusinessName: "Bakery"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing business name",
			params:     UserRegisterParams{Username: "baker", Password: "password123"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "password over 72 bytes",
			params: UserRegisterParams{
				Username:     "baker",
				Password:     testutils.GenerateOverBytesUnderRunes(20),
				BusinessName: "Bakery",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range cases {
		s.Run(tt.name, func() {
			res := s.post(RouteGroup+SignUpRoute, tt.params)
			defer res.Body.Close()
			s.Equal(tt.wantStatus, res.StatusCode)
			if tt.wantStatus == http.StatusCreated {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "baker", Password: "password123"}).
		Return(&domain.User{ID: 1, Username: "baker"}, "jwt-token", nil).Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "baker", Password: "wrong-password"}).
		Return(nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)).Times(1)

	okRes := s.post(RouteGroup+SignInRoute, UserLoginParams{Username: "baker", Password: "password123"})
	defer okRes.Body.Close()
	s.Require().Equal(http.StatusOK, okRes.StatusCode)

	var body AuthResponse
	s.Require().NoError(json.NewDecoder(okRes.Body).Decode(&body))
	s.Equal("jwt-token", body.Token)
	s.Equal("baker", body.User.Username)

	badRes := s.post(RouteGroup+SignInRoute, UserLoginParams{Username: "baker", Password: "wrong-password"})
	defer badRes.Body.Close()
	s.Equal(http.StatusUnauthorized, badRes.StatusCode)
}

func (s *AuthHandlerTestSuite) TestAlreadyAuthorized() {
	s.mockUserService.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

	token, err := tokens.GenerateUserJWT(1, "baker", time.Hour, s.jwtSecret)
	s.Require().NoError(err)

	res := s.post(RouteGroup+SignInRoute,
		UserLoginParams{Username: "baker", Password: "password123"},
		testutils.WithBearer(token),
	)
	defer res.Body.Close()
	s.Equal(http.StatusForbidden, res.StatusCode)
}
