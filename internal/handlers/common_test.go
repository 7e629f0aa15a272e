package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/boulder-log/internal/middlewares"
	"github.com/sbilibin2017/boulder-log/internal/models"
	"github.com/stretchr/testify/assert"
)

func newAuthedRequest(method, target string, body io.Reader, user *models.User) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if user != nil {
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
	}
	return req
}

func withRouteParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func assertErrorBody(t *testing.T, body []byte, message string) {
	t.Helper()
	assert.JSONEq(t, `{"error":"`+message+`"}`, string(body))
}
