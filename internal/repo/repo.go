package repo

import (
	"github.com/GlebRadaev/teamvest/internal/accrual"
	"github.com/GlebRadaev/teamvest/internal/pg"
	investmentrepo "github.com/GlebRadaev/teamvest/internal/repo/investment-repo"
	memberrepo "github.com/GlebRadaev/teamvest/internal/repo/member-repo"
	planrepo "github.com/GlebRadaev/teamvest/internal/repo/plan-repo"
	transactionrepo "github.com/GlebRadaev/teamvest/internal/repo/transaction-repo"
	treerepo "github.com/GlebRadaev/teamvest/internal/repo/tree-repo"
	walletrepo "github.com/GlebRadaev/teamvest/internal/repo/wallet-repo"
	"github.com/GlebRadaev/teamvest/internal/service/commissionservice"
	"github.com/GlebRadaev/teamvest/internal/service/investmentservice"
	"github.com/GlebRadaev/teamvest/internal/service/memberservice"
	"github.com/GlebRadaev/teamvest/internal/service/treeservice"
	"github.com/GlebRadaev/teamvest/internal/service/walletservice"
)

// MemberRepo is everything the services read and write on members.
type MemberRepo interface {
	memberservice.Repo
	treeservice.MemberRepo
	commissionservice.MemberRepo
	investmentservice.MemberRepo
}

type InvestmentRepo interface {
	investmentservice.Repo
	treeservice.PrincipalRepo
}

// PlanRepo serves plans and the commission and booster tables.
type PlanRepo interface {
	investmentservice.PlanRepo
	commissionservice.LevelRepo
	accrual.BoosterRepo
}

type Repositories struct {
	MemberRepo     MemberRepo
	TreeRepo       treeservice.TreeRepo
	InvestmentRepo InvestmentRepo
	PlanRepo       PlanRepo
	LedgerRepo     walletservice.LedgerRepo
	WalletRepo     walletservice.WalletRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		MemberRepo:     memberrepo.New(conn),
		TreeRepo:       treerepo.New(conn),
		InvestmentRepo: investmentrepo.New(conn),
		PlanRepo:       planrepo.New(conn),
		LedgerRepo:     transactionrepo.New(conn),
		WalletRepo:     walletrepo.New(conn),
	}
}
