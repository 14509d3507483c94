package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/dto"
	"github.com/GlebRadaev/teamvest/internal/handlers/httperr"
	"github.com/GlebRadaev/teamvest/pkg/auth"
	"github.com/GlebRadaev/teamvest/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type Service interface {
	GetWallet(ctx context.Context, memberID int64) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, memberID int64, limit, offset int) ([]domain.Transaction, error)
	RequestWithdrawal(ctx context.Context, memberID int64, source string, amount decimal.Decimal) (*domain.Transaction, error)
	Deposit(ctx context.Context, memberID int64, amount decimal.Decimal, processedBy, description string) (*domain.Transaction, error)
	Reconcile(ctx context.Context, memberID int64) (*domain.Wallet, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponseDTO {
	return dto.WalletResponseDTO{
		Main:           w.MainBalance,
		ROI:            w.ROIBalance,
		Commission:     w.CommissionBalance,
		Bonus:          w.BonusBalance,
		TotalEarned:    w.TotalEarned,
		TotalWithdrawn: w.TotalWithdrawn,
	}
}

func toTransactionResponse(t *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:                  t.ID,
		Type:                string(t.Type),
		Amount:              t.Amount,
		FeeAmount:           t.FeeAmount,
		NetAmount:           t.NetAmount,
		Currency:            t.Currency,
		Status:              string(t.Status),
		Source:              t.Source,
		Reference:           t.Reference,
		Description:         t.Description,
		RelatedMemberID:     t.RelatedMemberID,
		RelatedInvestmentID: t.RelatedInvestmentID,
		FailureReason:       t.FailureReason,
		CreatedAt:           t.CreatedAt,
	}
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

// GetWallet godoc
//
//	@Summary		Get own wallet
//	@Description	Balances of the authenticated member per source.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	wallet, err := h.walletService.GetWallet(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletResponse(wallet))
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	Ledger entries of the authenticated member, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"	default(50)
//	@Param			offset	query		int	false	"Offset"	default(0)
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Success		204		{object}	utils.Response	"No transactions"
//	@Failure		400		{object}	utils.Response	"Invalid paging"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	entries, err := h.walletService.ListTransactions(r.Context(), memberID, limit, offset)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	response := make([]dto.TransactionResponseDTO, len(entries))
	for i := range entries {
		response[i] = toTransactionResponse(&entries[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdraw godoc
//
//	@Summary		Request withdrawal
//	@Description	Reserve funds from one balance source. The transfer is settled asynchronously.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		202		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Insufficient balance or unknown source"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.walletService.RequestWithdrawal(r.Context(), memberID, req.Source, req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toTransactionResponse(entry))
}

// Deposit godoc
//
//	@Summary		Credit a deposit
//	@Description	Post a completed deposit to a member's main balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Router			/api/admin/deposits [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	adminID, _ := auth.UserID(r.Context())
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.walletService.Deposit(r.Context(), req.MemberID, req.Amount, "admin:"+strconv.FormatInt(adminID, 10), req.Description)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionResponse(entry))
}

// Reconcile godoc
//
//	@Summary		Reconcile a wallet
//	@Description	Replay the member's completed ledger entries and compare them with the stored wallet.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Member ID"
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Wallet does not match ledger"
//	@Router			/api/admin/members/{id}/reconcile [get]
func (h *WalletHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	wallet, err := h.walletService.Reconcile(r.Context(), id)
	if err != nil {
		var mismatch *domain.WalletMismatchError
		if errors.As(err, &mismatch) {
			utils.RespondWithError(w, http.StatusInternalServerError, mismatch.Error())
			return
		}
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletResponse(wallet))
}
