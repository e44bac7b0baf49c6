package middlewares

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/anticrisis/internal/service/tokens"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoggerRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(new(logrus.JSONFormatter))

	r := gin.New()
	r.Use(Logger(l))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := serve(r, req)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["requestID"])
	assert.Equal(t, "http", entry["component"])
	assert.InDelta(t, http.StatusOK, entry["status"], 0)

	generated := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Header().Get(RequestIDHeader)
	_, parseErr := uuid.Parse(generated)
	assert.NoError(t, parseErr)
}

func TestErrorsRendering(t *testing.T) {
	r := gin.New()
	r.Use(Errors())
	r.GET("/public", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusConflict, errors.New("already following")).SetType(gin.ErrorTypePublic)
	})
	r.GET("/fields", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("validation failed")).
			SetType(gin.ErrorTypePublic).
			SetMeta(FieldErrors{"amount": "decimal_gt"})
	})
	r.GET("/private-fields", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("check violation")).
			SetType(gin.ErrorTypePrivate).
			SetMeta(FieldErrors{"redeem_used": "range"})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusServiceUnavailable, errors.New("pool exhausted")).SetType(gin.ErrorTypePrivate)
	})

	cases := []struct {
		name       string
		path       string
		accept     string
		wantStatus int
		wantBody   string
	}{
		{name: "public json", path: "/public", accept: "application/json", wantStatus: http.StatusConflict,
			wantBody: `{"error":"already following"}`},
		{name: "public text", path: "/public", accept: "text/plain", wantStatus: http.StatusConflict,
			wantBody: "already following"},
		{name: "public fields json", path: "/fields", accept: "application/json",
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"validation failed","fields":{"amount":"decimal_gt"}}`},
		{name: "public fields text", path: "/fields", accept: "text/plain",
			wantStatus: http.StatusUnprocessableEntity, wantBody: "validation failed"},
		{name: "private fields hidden", path: "/private-fields", accept: "application/json",
			wantStatus: http.StatusUnprocessableEntity, wantBody: `{"error":"unprocessable entity"}`},
		{name: "private hides cause", path: "/private", accept: "application/json",
			wantStatus: http.StatusServiceUnavailable, wantBody: `{"error":"service unavailable"}`},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Accept", tt.accept)
			w := serve(r, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAuthRequired(t *testing.T) {
	secret := []byte("secret")
	r := gin.New()
	r.Use(Errors())
	r.GET("/me", AuthRequired(secret), func(c *gin.Context) {
		userID, _ := c.Get(CurrentUserIDKey)
		c.JSON(http.StatusOK, gin.H{"id": userID})
	})

	token, err := tokens.GenerateUserJWT(42, "alice", time.Hour, secret)
	require.NoError(t, err)
	foreignToken, err := tokens.GenerateUserJWT(42, "alice", time.Hour, []byte("other"))
	require.NoError(t, err)

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + token, wantStatus: http.StatusUnauthorized},
		{name: "foreign signature", header: "Bearer " + foreignToken, wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				body, _ := io.ReadAll(w.Body)
				assert.JSONEq(t, `{"id":42}`, string(body))
			}
		})
	}
}
