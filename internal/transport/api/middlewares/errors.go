package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "service unavailable"
	default:
		return "internal server error"
	}
}

// FieldErrors ошибки валидации по полям запроса. Передаются в Meta публичной ошибки gin.
type FieldErrors map[string]string

// Errors отрисовывает первую ошибку запроса. Текст ошибки уходит клиенту только для gin.ErrorTypePublic,
// для остальных - общий текст по http статусу. FieldErrors из Meta публичной ошибки отдаются в поле fields.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		var msg string
		var fields FieldErrors
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
			fields, _ = firstErr.Meta.(FieldErrors)
		} else {
			msg = statusErrorText(c.Writer.Status())
		}

		accept := c.GetHeader("Accept")
		contentType := c.GetHeader("Content-Type")
		switch {
		case strings.Contains(accept, "application/json"),
			strings.Contains(contentType, "application/json"):
			body := gin.H{"error": msg}
			if len(fields) > 0 {
				body["fields"] = fields
			}
			c.JSON(c.Writer.Status(), body)
		case strings.Contains(accept, "text/plain"):
			c.String(c.Writer.Status(), msg)
		default:
			c.String(c.Writer.Status(), msg)
		}
		c.Abort()
	}
}
