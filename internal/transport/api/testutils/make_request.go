package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

type RequestOptions struct {
	headers map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	// Body тело запроса: string и io.Reader уходят как есть, остальное кодируется в JSON. nil - без тела.
	Body any
}

// MakeRequest выполняет запрос к API через роутер. Content-Type по умолчанию application/json.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: map[string]string{"Content-Type": "application/json"},
	}
	for _, opt := range opts {
		opt(&options)
	}

	body, bodyErr := requestBody(args.Body)
	if bodyErr != nil {
		return nil, bodyErr
	}

	request := httptest.NewRequest(args.Method, args.URL, body)
	for k, v := range options.headers {
		if v != "" {
			request.Header.Set(k, v)
		}
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)
	return recorder.Result(), nil
}

func requestBody(payload any) (io.Reader, error) {
	switch body := payload.(type) {
	case nil:
		return nil, nil
	case string:
		if body == "" {
			return nil, nil
		}
		return strings.NewReader(body), nil
	case io.Reader:
		return body, nil
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %s", err.Error())
		}
		return bytes.NewReader(raw), nil
	}
}

// WithHeader устанавливает заголовок. Пустое значение убирает заголовок из запроса.
func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithBearer авторизует запрос JWT токеном. Пустой токен - запрос без авторизации.
func WithBearer(token string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		if token == "" {
			delete(fn.headers, "Authorization")
			return
		}
		fn.headers["Authorization"] = "Bearer " + token
	}
}
