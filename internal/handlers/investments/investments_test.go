package investments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/teamvest/internal/accrual"
	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/dto"
	"github.com/GlebRadaev/teamvest/internal/service/investmentservice"
	"github.com/GlebRadaev/teamvest/pkg/auth"
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

func NewMock(t *testing.T) (*InvestmentHandler, *MockService, *MockEngine) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	engine := NewMockEngine(ctrl)
	return New(service, engine), service, engine
}

func request(method, target, body string, memberID int64, role string, id string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx := r.Context()
	if memberID != 0 {
		ctx = context.WithValue(ctx, auth.UserIDKey, memberID)
		ctx = context.WithValue(ctx, auth.RoleKey, role)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func sampleInvestment() *domain.Investment {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Investment{
		ID:             7,
		MemberID:       3,
		PlanID:         1,
		InvestedAmount: decimal.NewFromInt(1000),
		CurrentValue:   decimal.NewFromInt(1000),
		TotalEarned:    decimal.Zero,
		Status:         domain.InvestmentActive,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 30),
	}
}

func TestOpen(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		memberID     int64
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Investment opened",
			body:     `{"plan_id":1,"amount":"1000"}`,
			memberID: 3,
			prepareMock: func() {
				service.EXPECT().Open(gomock.Any(), int64(3), int64(1), dec("1000")).Return(sampleInvestment(), &domain.Transaction{ID: 42}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:     "Insufficient balance",
			body:     `{"plan_id":1,"amount":"1000"}`,
			memberID: 3,
			prepareMock: func() {
				service.EXPECT().Open(gomock.Any(), int64(3), int64(1), dec("1000")).
					Return(nil, nil, domain.NewValidationError("investment.Open", "insufficient main balance"))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid body",
			body:         `{"plan_id":1,"amount":"lots"}`,
			memberID:     3,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unauthorized",
			body:         `{"plan_id":1,"amount":"1000"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()
			handler.Open(rec, request(http.MethodPost, "/api/investments", tt.body, tt.memberID, domain.RoleMember, ""))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.InvestmentResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, int64(7), resp.ID)
				assert.Equal(t, int64(42), resp.EntryID)
				assert.True(t, resp.InvestedAmount.Equal(decimal.NewFromInt(1000)))
			}
		})
	}
}

func TestList(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ListByMember(gomock.Any(), int64(3)).Return([]domain.Investment{*sampleInvestment()}, nil)
	rec := httptest.NewRecorder()
	handler.List(rec, request(http.MethodGet, "/api/investments", "", 3, domain.RoleMember, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.InvestmentResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 1)

	service.EXPECT().ListByMember(gomock.Any(), int64(4)).Return(nil, nil)
	rec = httptest.NewRecorder()
	handler.List(rec, request(http.MethodGet, "/api/investments", "", 4, domain.RoleMember, ""))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTopUp(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		role         string
		prepareMock  func()
		expectedCode int
		entryID      int64
	}{
		{
			name: "Owner tops up",
			id:   "7",
			role: domain.RoleMember,
			prepareMock: func() {
				service.EXPECT().TopUp(gomock.Any(), int64(3), false, int64(7), dec("250")).Return(sampleInvestment(), &domain.Transaction{ID: 43}, nil)
			},
			expectedCode: http.StatusOK,
			entryID:      43,
		},
		{
			name: "Admin flag is passed",
			id:   "7",
			role: domain.RoleAdmin,
			prepareMock: func() {
				service.EXPECT().TopUp(gomock.Any(), int64(3), true, int64(7), dec("250")).Return(sampleInvestment(), nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Completed investment",
			id:   "7",
			role: domain.RoleMember,
			prepareMock: func() {
				service.EXPECT().TopUp(gomock.Any(), int64(3), false, int64(7), dec("250")).
					Return(nil, nil, domain.NewStateConflictError("investment.TopUp", "investment 7 is completed"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid id",
			id:           "-1",
			role:         domain.RoleMember,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()
			handler.TopUp(rec, request(http.MethodPost, "/api/investments/"+tt.id+"/topup", `{"amount":"250"}`, 3, tt.role, tt.id))
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.InvestmentResponseDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.entryID, resp.EntryID)
			}
		})
	}
}

func TestProcessOwn(t *testing.T) {
	handler, _, engine := NewMock(t)

	engine.EXPECT().ProcessMember(gomock.Any(), int64(3)).Return(&accrual.MemberResult{MemberID: 3, Status: accrual.MemberNothingDue, TotalROI: decimal.Zero}, nil)
	rec := httptest.NewRecorder()
	handler.ProcessOwn(rec, request(http.MethodPost, "/api/investments/roi/process", "", 3, domain.RoleMember, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp accrual.MemberResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, accrual.MemberNothingDue, resp.Status)
}

func TestRunAccrual(t *testing.T) {
	handler, _, engine := NewMock(t)

	engine.EXPECT().RunDailyAccrual(gomock.Any(), accrual.TriggerAdmin).Return(&accrual.Summary{RunID: "run-1", Processed: 2}, nil)
	rec := httptest.NewRecorder()
	handler.RunAccrual(rec, request(http.MethodPost, "/api/admin/accrual/run", "", 1, domain.RoleAdmin, ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	engine.EXPECT().RunDailyAccrual(gomock.Any(), accrual.TriggerAdmin).Return(nil, domain.Transient("accrual.Run", errors.New("timeout")))
	rec = httptest.NewRecorder()
	handler.RunAccrual(rec, request(http.MethodPost, "/api/admin/accrual/run", "", 1, domain.RoleAdmin, ""))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApplyROI(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ApplyROI(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req investmentservice.ROIRequest) (*investmentservice.ROIResult, error) {
		assert.Equal(t, int64(7), req.InvestmentID)
		assert.True(t, req.Amount.Equal(decimal.RequireFromString("12.5")))
		assert.Nil(t, req.AccrualDate, "manual corrections carry no accrual date")
		return &investmentservice.ROIResult{Applied: req.Amount}, nil
	})
	rec := httptest.NewRecorder()
	handler.ApplyROI(rec, request(http.MethodPost, "/api/admin/investments/7/roi", `{"amount":"12.5"}`, 1, domain.RoleAdmin, "7"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBatchApplyROI(t *testing.T) {
	handler, _, engine := NewMock(t)

	engine.EXPECT().BatchApplyROI(gomock.Any(), gomock.Len(2)).Return([]accrual.BatchResult{
		{InvestmentID: 1, Result: &investmentservice.ROIResult{Applied: decimal.NewFromInt(5)}},
		{InvestmentID: 2, Error: "investment 2 is completed"},
	})
	rec := httptest.NewRecorder()
	body := `{"items":[{"investment_id":1,"amount":"5"},{"investment_id":2,"amount":"5"}]}`
	handler.BatchApplyROI(rec, request(http.MethodPost, "/api/admin/investments/roi/batch", body, 1, domain.RoleAdmin, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []accrual.BatchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.NotEmpty(t, resp[1].Error)

	rec = httptest.NewRecorder()
	handler.BatchApplyROI(rec, request(http.MethodPost, "/api/admin/investments/roi/batch", `{"items":[]}`, 1, domain.RoleAdmin, ""))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	items := make([]string, maxBatchSize+1)
	for i := range items {
		items[i] = fmt.Sprintf(`{"investment_id":%d,"amount":"1"}`, i+1)
	}
	oversized := `{"items":[` + strings.Join(items, ",") + `]}`
	rec = httptest.NewRecorder()
	handler.BatchApplyROI(rec, request(http.MethodPost, "/api/admin/investments/roi/batch", oversized, 1, domain.RoleAdmin, ""))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCancel(t *testing.T) {
	handler, service, _ := NewMock(t)

	cancelled := sampleInvestment()
	cancelled.Status = domain.InvestmentCancelled
	service.EXPECT().Cancel(gomock.Any(), int64(7)).Return(cancelled, nil)
	rec := httptest.NewRecorder()
	handler.Cancel(rec, request(http.MethodPost, "/api/admin/investments/7/cancel", "", 1, domain.RoleAdmin, "7"))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().Cancel(gomock.Any(), int64(8)).Return(nil, domain.NewNotFoundError("investment.Cancel", "investment 8 not found"))
	rec = httptest.NewRecorder()
	handler.Cancel(rec, request(http.MethodPost, "/api/admin/investments/8/cancel", "", 1, domain.RoleAdmin, "8"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
