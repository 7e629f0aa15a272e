package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/boulder-log/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Username: "john_doe",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john_doe", "secret123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &LoginResponse{
				AuthToken: "JWT_TOKEN",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &LoginErrorResponse{
				Error: "Invalid request body",
			},
		},
		{
			name: "missing username",
			inputBody: LoginRequest{
				Password: "secret123",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &LoginErrorResponse{
				Error: "Missing 'username' in request body",
			},
		},
		{
			name: "missing password",
			inputBody: LoginRequest{
				Username: "john_doe",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &LoginErrorResponse{
				Error: "Missing 'password' in request body",
			},
		},
		{
			name: "incorrect credentials",
			inputBody: LoginRequest{
				Username: "wronguser",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "wronguser", "wrongpass").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &LoginErrorResponse{
				Error: "Incorrect username or password",
			},
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Username: "john_doe",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john_doe", "secret123").
					Return("", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &LoginErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &LoginResponse{}
			default:
				respBody = &LoginErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

// An unknown username and a wrong password for a known username must
// produce byte-identical responses.
func TestLoginHandler_RejectionsLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), "ghost", "whatever").
		Return("", services.ErrInvalidCredentials)
	mockSvc.EXPECT().
		Login(gomock.Any(), "john_doe", "wrongpass").
		Return("", services.ErrInvalidCredentials)

	handler := NewLoginHandler(mockSvc)

	bodies := make([]string, 0, 2)
	for _, creds := range []LoginRequest{
		{Username: "ghost", Password: "whatever"},
		{Username: "john_doe", Password: "wrongpass"},
	} {
		bodyBytes, _ := json.Marshal(creds)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(bodyBytes))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		bodies = append(bodies, w.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1])
}
