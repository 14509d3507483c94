package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/dto"
	"github.com/GlebRadaev/teamvest/pkg/auth"
	"github.com/GlebRadaev/teamvest/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type decimalEq struct{ want decimal.Decimal }

func (m decimalEq) Matches(x any) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalEq) String() string { return "equals " + m.want.String() }

func dec(s string) gomock.Matcher { return decimalEq{decimal.RequireFromString(s)} }

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func authed(r *http.Request, id int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, id))
}

func TestGetWallet(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.WalletResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), int64(1)).Return(&domain.Wallet{
					MemberID:          1,
					MainBalance:       decimal.RequireFromString("100.5"),
					ROIBalance:        decimal.RequireFromString("10"),
					CommissionBalance: decimal.Zero,
					BonusBalance:      decimal.RequireFromString("5"),
					TotalEarned:       decimal.RequireFromString("15"),
					TotalWithdrawn:    decimal.Zero,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.WalletResponseDTO{
				Main:  decimal.RequireFromString("100.5"),
				ROI:   decimal.RequireFromString("10"),
				Bonus: decimal.RequireFromString("5"),
			},
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), int64(1)).Return(nil, domain.Transient("wallet.GetWallet", errors.New("timeout")))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()
			handler.GetWallet(rec, authed(httptest.NewRequest(http.MethodGet, "/api/wallet", nil), 1))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.True(t, body.Main.Equal(tt.expectedBody.Main))
				assert.True(t, body.ROI.Equal(tt.expectedBody.ROI))
				assert.True(t, body.Bonus.Equal(tt.expectedBody.Bonus))
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Withdrawal reserved",
			body: `{"source":"roi","amount":"25.5"}`,
			prepareMock: func() {
				entry := domain.NewTransaction(1, domain.TxWithdrawal, decimal.RequireFromString("25.5"), decimal.Zero, domain.SourceROI)
				entry.Status = domain.TxPending
				service.EXPECT().RequestWithdrawal(gomock.Any(), int64(1), "roi", dec("25.5")).Return(entry, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:          "Invalid request body",
			body:          `{"source":"roi","amount":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Insufficient balance",
			body: `{"source":"roi","amount":"25.5"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), int64(1), "roi", dec("25.5")).
					Return(nil, domain.NewValidationError("wallet.RequestWithdrawal", "insufficient roi balance"))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "wallet.RequestWithdrawal: insufficient roi balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()
			handler.Withdraw(rec, authed(httptest.NewRequest(http.MethodPost, "/api/wallet/withdraw", bytes.NewBufferString(tt.body)), 1))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				_ = json.NewDecoder(rec.Body).Decode(&resp)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Default page",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListTransactions(gomock.Any(), int64(1), 50, 0).
					Return([]domain.Transaction{*domain.NewTransaction(1, domain.TxDeposit, decimal.NewFromInt(10), decimal.Zero, "")}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Page size is capped",
			query: "?limit=10000&offset=20",
			prepareMock: func() {
				service.EXPECT().ListTransactions(gomock.Any(), int64(1), 500, 20).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid offset",
			query:        "?offset=-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()
			handler.GetTransactions(rec, authed(httptest.NewRequest(http.MethodGet, "/api/wallet/transactions"+tt.query, nil), 1))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestDeposit(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Deposit(gomock.Any(), int64(3), dec("1000"), "admin:1", "bank transfer").
		Return(domain.NewTransaction(3, domain.TxDeposit, decimal.NewFromInt(1000), decimal.Zero, ""), nil)
	rec := httptest.NewRecorder()
	body := `{"member_id":3,"amount":"1000","description":"bank transfer"}`
	handler.Deposit(rec, authed(httptest.NewRequest(http.MethodPost, "/api/admin/deposits", bytes.NewBufferString(body)), 1))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReconcile(t *testing.T) {
	handler, service := NewMock(t)

	request := func(id string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/admin/members/"+id+"/reconcile", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	service.EXPECT().Reconcile(gomock.Any(), int64(3)).Return(&domain.Wallet{MemberID: 3}, nil)
	rec := httptest.NewRecorder()
	handler.Reconcile(rec, request("3"))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().Reconcile(gomock.Any(), int64(4)).Return(nil, &domain.WalletMismatchError{MemberID: 4})
	rec = httptest.NewRecorder()
	handler.Reconcile(rec, request("4"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Message, "does not match ledger")
}
