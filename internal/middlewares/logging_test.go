package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()

	var reqIDInContext string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqIDInContext = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	handler := LoggingMiddleware(log)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())

	// A request id is generated, put in the context and echoed in the header.
	headerID := rr.Header().Get("X-Request-ID")
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, reqIDInContext)
	_, err := uuid.Parse(headerID)
	assert.NoError(t, err)
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	log := zap.NewNop().Sugar()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	LoggingMiddleware(log)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
