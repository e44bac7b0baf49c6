package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvs PostServicer
}

func NewPostHandler(postSvs PostServicer) *PostHandler {
	return &PostHandler{postSvs: postSvs}
}

type PostResponse struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username"`
	BusinessName string    `json:"business_name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url,omitempty"`
	LikesCount   int64     `json:"likes_count"`
}

type PostCreateParams struct {
	Description string `binding:"max=10000"              json:"description"`
	ImageURL    string `binding:"omitempty,max=2048,url" json:"image_url"`
}

// Create POST RouteGroup + MyPostsRoute.
func (h *PostHandler) Create(c *gin.Context) {
	var params PostCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	post, err := h.postSvs.Create(ctx, repoargs.PostCreate{
		UserID:      getUserIDFromContext(c),
		Description: params.Description,
		ImageURL:    params.ImageURL,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPostResponse(post))
}

// Index GET RouteGroup + MyPostsRoute.
func (h *PostHandler) Index(c *gin.Context) {
	h.list(c, func(ctx context.Context, page repoargs.Pagination) ([]domain.Post, error) {
		return h.postSvs.ListOwn(ctx, getUserIDFromContext(c), page) //nolint:wrapcheck
	})
}

// ByProfile GET RouteGroup + ProfilePostsRoute.
func (h *PostHandler) ByProfile(c *gin.Context) {
	h.list(c, func(ctx context.Context, page repoargs.Pagination) ([]domain.Post, error) {
		return h.postSvs.ListByUsername(ctx, c.Param("username"), page) //nolint:wrapcheck
	})
}

// Feed GET RouteGroup + FeedRoute. Посты профилей, на которые подписан текущий юзер.
func (h *PostHandler) Feed(c *gin.Context) {
	h.list(c, func(ctx context.Context, page repoargs.Pagination) ([]domain.Post, error) {
		return h.postSvs.Feed(ctx, getUserIDFromContext(c), page) //nolint:wrapcheck
	})
}

func (h *PostHandler) list(
	c *gin.Context,
	fetch func(ctx context.Context, page repoargs.Pagination) ([]domain.Post, error),
) {
	var params PaginationParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	posts, err := fetch(ctx, params.toArgs())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]PostResponse, len(posts))
	for i := range posts {
		response[i] = newPostResponse(&posts[i])
	}
	c.JSON(http.StatusOK, response)
}

func newPostResponse(p *domain.Post) PostResponse {
	return PostResponse{
		ID:           p.ID,
		CreatedAt:    p.CreatedAt,
		Username:     p.Username,
		BusinessName: p.BusinessName,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		LikesCount:   p.LikesCount,
	}
}
