package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/anticrisis/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup          = "/api"
	SignUpRoute         = "/auth/signup"
	SignInRoute         = "/auth/signin"
	MyProfileRoute      = "/me/profile"
	MyPostsRoute        = "/me/posts"
	ProfileRoute        = "/profiles/:username"
	ProfilePostsRoute   = "/profiles/:username/posts"
	FollowRoute         = "/profiles/:username/follow"
	SearchRoute         = "/search"
	FeedRoute           = "/feed"
	DiscountsRoute      = "/discounts"
	DiscountRoute       = "/discounts/:id"
	DiscountRedeemRoute = "/discounts/:id/redeem"
	MetricsRoute        = "/metrics"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	ProfileService  ProfileServicer
	FollowService   FollowServicer
	DiscountService DiscountServicer
	PostService     PostServicer
	JWTSecretKey    []byte
	// MetricsHandler опционален, при nil роут MetricsRoute не регистрируется.
	MetricsHandler http.Handler
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	if args.MetricsHandler != nil {
		r.GET(MetricsRoute, gin.WrapH(args.MetricsHandler))
	}

	authHandler := NewAuthHandler(args.UserService)
	profileHandler := NewProfileHandler(args.ProfileService, args.FollowService)
	discountHandler := NewDiscountHandler(args.DiscountService)
	postHandler := NewPostHandler(args.PostService)

	api := r.Group(RouteGroup)

	api.POST(SignUpRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(SignInRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(MyProfileRoute, profileHandler.Me)
	api.PATCH(MyProfileRoute, profileHandler.UpdateMe)
	api.GET(MyPostsRoute, postHandler.Index)
	api.POST(MyPostsRoute, postHandler.Create)

	api.GET(ProfileRoute, profileHandler.Show)
	api.GET(ProfilePostsRoute, postHandler.ByProfile)
	api.POST(FollowRoute, profileHandler.Follow)
	api.DELETE(FollowRoute, profileHandler.Unfollow)
	api.GET(SearchRoute, profileHandler.Search)
	api.GET(FeedRoute, postHandler.Feed)

	api.GET(DiscountsRoute, discountHandler.Index)
	api.POST(DiscountsRoute, discountHandler.Create)
	api.GET(DiscountRoute, discountHandler.Show)
	api.POST(DiscountRedeemRoute, discountHandler.Redeem)
	return r, nil
}
