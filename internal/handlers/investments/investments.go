package investments

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/teamvest/internal/accrual"
	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/dto"
	"github.com/GlebRadaev/teamvest/internal/handlers/httperr"
	"github.com/GlebRadaev/teamvest/internal/service/investmentservice"
	"github.com/GlebRadaev/teamvest/pkg/auth"
	"github.com/GlebRadaev/teamvest/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=investments.go -destination=mock_investments.go -package=investments

const maxBatchSize = 1000

type Service interface {
	Open(ctx context.Context, memberID, planID int64, amount decimal.Decimal) (*domain.Investment, *domain.Transaction, error)
	TopUp(ctx context.Context, callerID int64, isAdmin bool, investmentID int64, amount decimal.Decimal) (*domain.Investment, *domain.Transaction, error)
	ListByMember(ctx context.Context, memberID int64) ([]domain.Investment, error)
	ApplyROI(ctx context.Context, req investmentservice.ROIRequest) (*investmentservice.ROIResult, error)
	Cancel(ctx context.Context, investmentID int64) (*domain.Investment, error)
}

type Engine interface {
	RunDailyAccrual(ctx context.Context, trigger string) (*accrual.Summary, error)
	ProcessMember(ctx context.Context, memberID int64) (*accrual.MemberResult, error)
	BatchApplyROI(ctx context.Context, reqs []investmentservice.ROIRequest) []accrual.BatchResult
}

type InvestmentHandler struct {
	investmentService Service
	engine            Engine
}

func New(investmentService Service, engine Engine) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
		engine:            engine,
	}
}

func toResponse(inv *domain.Investment) dto.InvestmentResponseDTO {
	return dto.InvestmentResponseDTO{
		ID:             inv.ID,
		PlanID:         inv.PlanID,
		InvestedAmount: inv.InvestedAmount,
		CurrentValue:   inv.CurrentValue,
		TotalEarned:    inv.TotalEarned,
		Status:         string(inv.Status),
		StartDate:      inv.StartDate,
		EndDate:        inv.EndDate,
		LastROIDate:    inv.LastROIDate,
	}
}

func withEntry(inv *domain.Investment, entry *domain.Transaction) dto.InvestmentResponseDTO {
	resp := toResponse(inv)
	if entry != nil {
		resp.EntryID = entry.ID
	}
	return resp
}

func investmentID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// List godoc
//
//	@Summary		List own investments
//	@Tags			Investments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvestmentResponseDTO
//	@Success		204	{object}	utils.Response	"No investments"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/investments [get]
func (h *InvestmentHandler) List(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	items, err := h.investmentService.ListByMember(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(items) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	response := make([]dto.InvestmentResponseDTO, len(items))
	for i := range items {
		response[i] = toResponse(&items[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Open godoc
//
//	@Summary		Open an investment
//	@Description	Debit the main balance, credit the sponsor's direct bonus and add the principal to the upline's team business.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OpenInvestmentRequestDTO	true	"Plan and amount"
//	@Success		201		{object}	dto.InvestmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Plan not found"
//	@Failure		422		{object}	utils.Response	"Amount out of range or insufficient balance"
//	@Router			/api/investments [post]
func (h *InvestmentHandler) Open(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.OpenInvestmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	inv, entry, err := h.investmentService.Open(r.Context(), memberID, req.PlanID, req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, withEntry(inv, entry))
}

// TopUp godoc
//
//	@Summary		Top up an investment
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Investment ID"
//	@Param			request	body		dto.TopUpRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.InvestmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Investment not found"
//	@Failure		409		{object}	utils.Response	"Investment is not active"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Router			/api/investments/{id}/topup [post]
func (h *InvestmentHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := investmentID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid investment id")
		return
	}
	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	inv, entry, err := h.investmentService.TopUp(r.Context(), memberID, auth.IsAdmin(r.Context()), id, req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, withEntry(inv, entry))
}

// ProcessOwn godoc
//
//	@Summary		Accrue own ROI
//	@Description	Apply today's ROI to the caller's due investments. Investments already accrued today are not paid again.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accrual.MemberResult
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/investments/roi/process [post]
func (h *InvestmentHandler) ProcessOwn(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	result, err := h.engine.ProcessMember(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// RunAccrual godoc
//
//	@Summary		Run daily accrual
//	@Description	Accrue today's ROI for every due investment and return the run summary.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accrual.Summary
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/accrual/run [post]
func (h *InvestmentHandler) RunAccrual(w http.ResponseWriter, r *http.Request) {
	summary, err := h.engine.RunDailyAccrual(r.Context(), accrual.TriggerAdmin)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// ApplyROI godoc
//
//	@Summary		Apply ROI manually
//	@Description	Credit an explicit ROI amount to one investment and pay level commissions on it.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Investment ID"
//	@Param			request	body		dto.ApplyROIRequestDTO	true	"Amount"
//	@Success		200		{object}	investmentservice.ROIResult
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Investment not found"
//	@Failure		409		{object}	utils.Response	"Investment is not active"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Router			/api/admin/investments/{id}/roi [post]
func (h *InvestmentHandler) ApplyROI(w http.ResponseWriter, r *http.Request) {
	id, ok := investmentID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid investment id")
		return
	}
	var req dto.ApplyROIRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.investmentService.ApplyROI(r.Context(), investmentservice.ROIRequest{
		InvestmentID:    id,
		Amount:          req.Amount,
		NewCurrentValue: req.NewCurrentValue,
		Description:     req.Description,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// BatchApplyROI godoc
//
//	@Summary		Apply ROI to many investments
//	@Description	Each item is applied in its own transaction; one failure does not affect the others.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BatchROIRequestDTO	true	"Items"
//	@Success		200		{array}		accrual.BatchResult
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Empty or oversized batch"
//	@Router			/api/admin/investments/roi/batch [post]
func (h *InvestmentHandler) BatchApplyROI(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchROIRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Items) == 0 || len(req.Items) > maxBatchSize {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "batch must hold 1 to "+strconv.Itoa(maxBatchSize)+" items")
		return
	}
	reqs := make([]investmentservice.ROIRequest, len(req.Items))
	for i, item := range req.Items {
		reqs[i] = investmentservice.ROIRequest{
			InvestmentID: item.InvestmentID,
			Amount:       item.Amount,
			Description:  item.Description,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, h.engine.BatchApplyROI(r.Context(), reqs))
}

// Cancel godoc
//
//	@Summary		Cancel an investment
//	@Description	Stop accrual and remove the principal from the upline's team business. The principal is not refunded.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Investment ID"
//	@Success		200	{object}	dto.InvestmentResponseDTO
//	@Failure		404	{object}	utils.Response	"Investment not found"
//	@Failure		409	{object}	utils.Response	"Investment is not active"
//	@Router			/api/admin/investments/{id}/cancel [post]
func (h *InvestmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := investmentID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid investment id")
		return
	}
	inv, err := h.investmentService.Cancel(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(inv))
}
