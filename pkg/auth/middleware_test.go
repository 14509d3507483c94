package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		prepareMock  func(m *MockJWTServiceInterface)
		expectedCode int
		admin        bool
	}{
		{
			name:         "Missing Header",
			prepareMock:  func(m *MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Rejected Token",
			header: "Bearer broken",
			prepareMock: func(m *MockJWTServiceInterface) {
				m.EXPECT().ValidateToken("broken").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Member Token",
			header: "Bearer good",
			prepareMock: func(m *MockJWTServiceInterface) {
				m.EXPECT().ValidateToken("good").Return(&Claims{UserID: 5, Role: "member"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Admin Token",
			header: "Bearer root",
			prepareMock: func(m *MockJWTServiceInterface) {
				m.EXPECT().ValidateToken("root").Return(&Claims{UserID: 1, Role: RoleAdmin}, nil)
			},
			expectedCode: http.StatusOK,
			admin:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := NewMockJWTServiceInterface(ctrl)
			tt.prepareMock(validator)

			var seenID int64
			var seenAdmin bool
			handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID, _ = UserID(r.Context())
				seenAdmin = IsAdmin(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.NotZero(t, seenID)
				assert.Equal(t, tt.admin, seenAdmin)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := NewMockJWTServiceInterface(ctrl)
	validator.EXPECT().ValidateToken("member").Return(&Claims{UserID: 5, Role: "member"}, nil)
	validator.EXPECT().ValidateToken("admin").Return(&Claims{UserID: 1, Role: RoleAdmin}, nil)

	handler := AuthMiddleware(validator)(AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	for token, code := range map[string]int{"member": http.StatusForbidden, "admin": http.StatusNoContent} {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/tree/rebuild", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, code, rr.Code, token)
	}
}
