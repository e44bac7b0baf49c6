package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DiscountHandler struct {
	discountSvs DiscountServicer
}

func NewDiscountHandler(discountSvs DiscountServicer) *DiscountHandler {
	return &DiscountHandler{discountSvs: discountSvs}
}

type DiscountPartyResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	BusinessName string `json:"business_name"`
	AvatarURL    string `json:"avatar_url,omitempty"`
}

type DiscountResponse struct {
	ID          int64                 `json:"id"`
	CreatedAt   time.Time             `json:"created_at"`
	Percentage  string                `json:"percentage"`
	RedeemLimit string                `json:"redeem_limit"`
	RedeemUsed  string                `json:"redeem_used"`
	Issuer      DiscountPartyResponse `json:"issuer"`
	Recipient   DiscountPartyResponse `json:"recipient"`
}

type DiscountCreateParams struct {
	RecipientID int64           `binding:"required,gt=0"                                         json:"recipient_id"`
	Percentage  decimal.Decimal `binding:"required,decimal_gt=0,decimal_lte=100,decimal_scale=2" json:"percentage"`
	RedeemLimit decimal.Decimal `binding:"decimal_gte=0,decimal_lte=99999999.99,decimal_scale=2"       json:"redeem_limit"`
}

// Create POST RouteGroup + DiscountsRoute. Выдает скидку от имени текущего юзера.
func (h *DiscountHandler) Create(c *gin.Context) {
	var params DiscountCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.discountSvs.Issue(ctx, service.IssueDiscountArgs{
		IssuerID:    getUserIDFromContext(c),
		RecipientID: params.RecipientID,
		Percentage:  params.Percentage,
		RedeemLimit: params.RedeemLimit,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newDiscountResponse(view))
}

type DiscountListParams struct {
	PaginationParams
	Type  string `binding:"required,oneof=issued received" form:"type"`
	Query string `binding:"max=255"                        form:"q"`
}

// Index GET RouteGroup + DiscountsRoute. Выданные или полученные скидки текущего юзера, новые первыми.
func (h *DiscountHandler) Index(c *gin.Context) {
	var params DiscountListParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	views, err := h.discountSvs.List(ctx, service.ListDiscountsArgs{
		UserID:     getUserIDFromContext(c),
		Direction:  domain.DiscountDirection(params.Type),
		Query:      params.Query,
		Pagination: params.toArgs(),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]DiscountResponse, len(views))
	for i := range views {
		response[i] = newDiscountResponse(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + DiscountRoute.
func (h *DiscountHandler) Show(c *gin.Context) {
	discountID, ok := discountIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.discountSvs.Get(ctx, getUserIDFromContext(c), discountID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDiscountResponse(view))
}

type DiscountRedeemParams struct {
	Amount decimal.Decimal `binding:"required,decimal_gt=0,decimal_lte=99999999.99,decimal_scale=2" json:"amount"`
}

// Redeem POST RouteGroup + DiscountRedeemRoute. Превышение лимита отдает 409 и ничего не меняет.
func (h *DiscountHandler) Redeem(c *gin.Context) {
	discountID, ok := discountIDParam(c)
	if !ok {
		return
	}
	var params DiscountRedeemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.discountSvs.Redeem(ctx, service.RedeemDiscountArgs{
		ActorID:    getUserIDFromContext(c),
		DiscountID: discountID,
		Amount:     params.Amount,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDiscountResponse(view))
}

func discountIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortPublic(c, http.StatusNotFound, "not found", err)
		return 0, false
	}
	if id <= 0 {
		abortPublic(c, http.StatusNotFound, "not found", errors.New("non positive discount id"))
		return 0, false
	}
	return id, true
}

func newDiscountResponse(v *domain.DiscountView) DiscountResponse {
	return DiscountResponse{
		ID:          v.ID,
		CreatedAt:   v.CreatedAt,
		Percentage:  v.Percentage.StringFixed(2),
		RedeemLimit: v.RedeemLimit.StringFixed(2),
		RedeemUsed:  v.RedeemUsed.StringFixed(2),
		Issuer: DiscountPartyResponse{
			ID:           v.IssuerID,
			Username:     v.IssuerUsername,
			BusinessName: v.IssuerBusinessName,
		},
		Recipient: DiscountPartyResponse{
			ID:           v.RecipientID,
			Username:     v.RecipientUsername,
			BusinessName: v.RecipientBusinessName,
			AvatarURL:    v.RecipientAvatarURL,
		},
	}
}
