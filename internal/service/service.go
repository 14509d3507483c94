package service

import (
	"fmt"

	"github.com/GlebRadaev/teamvest/internal/accrual"
	"github.com/GlebRadaev/teamvest/internal/config"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/GlebRadaev/teamvest/internal/repo"
	"github.com/GlebRadaev/teamvest/internal/service/commissionservice"
	"github.com/GlebRadaev/teamvest/internal/service/investmentservice"
	"github.com/GlebRadaev/teamvest/internal/service/memberservice"
	"github.com/GlebRadaev/teamvest/internal/service/treeservice"
	"github.com/GlebRadaev/teamvest/internal/service/walletservice"
	"github.com/GlebRadaev/teamvest/pkg/auth"
)

// Deps are the infrastructure pieces the services share besides the
// repositories.
type Deps struct {
	TXManager pg.TXManager
	Cache     treeservice.StatsCache
	Sink      accrual.Sink
}

type Services struct {
	MemberService     *memberservice.Service
	TreeService       *treeservice.Service
	WalletService     *walletservice.Service
	InvestmentService *investmentservice.Service
	CommissionService *commissionservice.Service
	Engine            *accrual.Engine
	Tokens            *auth.JWTService
}

func New(cfg *config.Config, repos *repo.Repositories, deps Deps) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("accrual timezone: %w", err)
	}

	tokens := auth.NewJWTService(cfg.JWTSecret)
	walletService := walletservice.New(repos.WalletRepo, repos.LedgerRepo, deps.TXManager, cfg.WithdrawalFeePercent)
	treeService := treeservice.New(repos.TreeRepo, repos.MemberRepo, repos.InvestmentRepo, deps.Cache, deps.TXManager)
	commissionService := commissionservice.New(treeService, repos.MemberRepo, repos.PlanRepo, walletService,
		cfg.MaxCommissionLevels, cfg.DirectBonusPercent)
	investmentService := investmentservice.New(repos.InvestmentRepo, repos.PlanRepo, repos.MemberRepo,
		walletService, treeService, commissionService, deps.TXManager, loc)
	memberService := memberservice.New(repos.MemberRepo, walletService, treeService, deps.TXManager,
		&auth.HashService{}, tokens)
	engine := accrual.New(accrual.Config{
		Workers:    cfg.AccrualWorkers,
		BatchLimit: cfg.AccrualBatchLimit,
		Location:   loc,
	}, investmentService, treeService, repos.PlanRepo, deps.Sink)

	return &Services{
		MemberService:     memberService,
		TreeService:       treeService,
		WalletService:     walletService,
		InvestmentService: investmentService,
		CommissionService: commissionService,
		Engine:            engine,
		Tokens:            tokens,
	}, nil
}
