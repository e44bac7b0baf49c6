package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/internal/transport/api/middlewares"
	"github.com/fsdevblog/anticrisis/pkg/uow"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// PaginationParams offset пагинация из query string.
type PaginationParams struct {
	Offset   uint `binding:"omitempty,max=1000000" form:"offset"`
	PageSize uint `binding:"omitempty,max=100"     form:"pageSize"`
}

func (p PaginationParams) toArgs() repoargs.Pagination {
	return repoargs.Pagination{Offset: p.Offset, Limit: p.PageSize}
}

// abortWithBindError отвечает 422 на ошибки валидатора и 400 на неразбираемый запрос.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		fields := make(middlewares.FieldErrors, len(valErrs))
		for _, fieldErr := range valErrs {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		abortWithFields(c, "validation failed", fields, bindErr)
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

// abortWithServiceError переводит ошибку сервисного слоя в http статус.
func abortWithServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		abortWithFields(c, validationErr.Reason,
			middlewares.FieldErrors{validationErr.Field: validationErr.Reason}, err)
	case errors.Is(err, domain.ErrInvalidArgument):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrRecordNotFound):
		abortPublic(c, http.StatusNotFound, "not found", err)
	case errors.Is(err, domain.ErrAlreadyFollowing):
		abortPublic(c, http.StatusConflict, "already following", err)
	case errors.Is(err, domain.ErrNotFollowing):
		abortPublic(c, http.StatusConflict, "not following", err)
	case errors.Is(err, domain.ErrLimitExceeded):
		abortPublic(c, http.StatusConflict, "redeem limit exceeded", err)
	case errors.Is(err, domain.ErrDuplicateKey), errors.Is(err, domain.ErrConflict):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrTransient),
		errors.Is(err, uow.ErrTxFailed),
		errors.Is(err, context.DeadlineExceeded):
		_ = c.AbortWithError(http.StatusServiceUnavailable, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// abortWithFields 422 с описанием ошибок по полям.
func abortWithFields(c *gin.Context, msg string, fields middlewares.FieldErrors, cause error) {
	_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New(msg)).
		SetType(gin.ErrorTypePublic).
		SetMeta(fields)
	_ = c.Error(cause).SetType(gin.ErrorTypePrivate)
}

// abortPublic отдает клиенту msg, а исходную ошибку оставляет только для лога.
func abortPublic(c *gin.Context, status int, msg string, cause error) {
	_ = c.AbortWithError(status, errors.New(msg)).SetType(gin.ErrorTypePublic)
	_ = c.Error(cause).SetType(gin.ErrorTypePrivate)
}
