package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/dto"
	"github.com/GlebRadaev/teamvest/internal/handlers/httperr"
	"github.com/GlebRadaev/teamvest/internal/service/memberservice"
	"github.com/GlebRadaev/teamvest/pkg/utils"
	"github.com/GlebRadaev/teamvest/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=members.go -destination=mock_members.go -package=members

type Service interface {
	Register(ctx context.Context, login, password, referralCode string) (*domain.Member, error)
	Authenticate(ctx context.Context, login, password string) (*domain.Member, error)
	GenerateToken(member *domain.Member) (string, error)
	SetStatus(ctx context.Context, memberID int64, status domain.MemberStatus) (*domain.Member, error)
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Register godoc
//
//	@Summary		Register a new member
//	@Description	Create a member account, its wallet and its place in the referral tree. The referral code of the sponsor is optional.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Login already taken"
//	@Failure		422		{object}	utils.Response	"Invalid referral code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members/register [post]
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	member, err := h.memberService.Register(r.Context(), req.Login, req.Password, req.ReferralCode)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	h.respondWithToken(w, member, "Member successfully registered")
}

// Login godoc
//
//	@Summary		Authenticate member
//	@Description	Log in with a member account and get a JWT token in the Authorization header
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		409		{object}	utils.Response	"Member is blocked"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members/login [post]
func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	member, err := h.memberService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, memberservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		httperr.Respond(w, err)
		return
	}
	h.respondWithToken(w, member, "Member successfully authenticated")
}

func (h *MemberHandler) respondWithToken(w http.ResponseWriter, member *domain.Member, message string) {
	token, err := h.memberService.GenerateToken(member)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message:      message,
		MemberID:     member.ID,
		ReferralCode: validate.ReferralCode(member.ID),
	})
}

// SetStatus godoc
//
//	@Summary		Change member status
//	@Description	Activate, deactivate or block a member. The upline's active team size follows the change.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Member ID"
//	@Param			request	body		dto.SetStatusRequestDTO	true	"New status"
//	@Success		200		{object}	domain.Member
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Failure		422		{object}	utils.Response	"Unknown status"
//	@Router			/api/admin/members/{id}/status [post]
func (h *MemberHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	var req dto.SetStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	member, err := h.memberService.SetStatus(r.Context(), id, domain.MemberStatus(req.Status))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, member)
}
