package team

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/teamvest/internal/handlers/httperr"
	"github.com/GlebRadaev/teamvest/internal/service/treeservice"
	"github.com/GlebRadaev/teamvest/internal/tree"
	"github.com/GlebRadaev/teamvest/pkg/auth"
	"github.com/GlebRadaev/teamvest/pkg/utils"
)

//go:generate mockgen -source=team.go -destination=mock_team.go -package=team

type Service interface {
	GetTreePosition(ctx context.Context, memberID int64) (*treeservice.Position, error)
	GetTeamStatistics(ctx context.Context, memberID int64) (*treeservice.TeamStats, error)
	GetSubtree(ctx context.Context, memberID int64, maxDepth int) (*tree.Subtree, error)
	RebuildTree(ctx context.Context) (*treeservice.RebuildReport, error)
}

type TeamHandler struct {
	teamService Service
}

func New(teamService Service) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetPosition godoc
//
//	@Summary		Get own tree position
//	@Description	Tree node of the authenticated member with its upline and referral code.
//	@Tags			Tree
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	treeservice.Position
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Member has no tree node"
//	@Router			/api/tree/position [get]
func (h *TeamHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	position, err := h.teamService.GetTreePosition(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, position)
}

// GetStats godoc
//
//	@Summary		Get team statistics
//	@Description	Team counters of the authenticated member with a per-depth breakdown.
//	@Tags			Tree
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	treeservice.TeamStats
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Member has no tree node"
//	@Router			/api/tree/stats [get]
func (h *TeamHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	stats, err := h.teamService.GetTeamStatistics(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// GetSubtree godoc
//
//	@Summary		Get downline
//	@Description	Nested downline of the authenticated member. Depth is clamped to 1..10.
//	@Tags			Tree
//	@Security		BearerAuth
//	@Produce		json
//	@Param			depth	query		int	false	"Max depth"	default(3)
//	@Success		200		{object}	tree.Subtree
//	@Failure		400		{object}	utils.Response	"Invalid depth"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/tree/subtree [get]
func (h *TeamHandler) GetSubtree(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	depth := treeservice.DefaultSubtreeDepth
	if raw := r.URL.Query().Get("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid depth")
			return
		}
		depth = d
	}
	subtree, err := h.teamService.GetSubtree(r.Context(), memberID, depth)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, subtree)
}

// Rebuild godoc
//
//	@Summary		Rebuild the referral tree
//	@Description	Recompute every tree node from member referrals and investments.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	treeservice.RebuildReport
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/tree/rebuild [post]
func (h *TeamHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	report, err := h.teamService.RebuildTree(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
