package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/teamvest/docs"
	investmenthandlers "github.com/GlebRadaev/teamvest/internal/handlers/investments"
	memberhandlers "github.com/GlebRadaev/teamvest/internal/handlers/members"
	teamhandlers "github.com/GlebRadaev/teamvest/internal/handlers/team"
	wallethandlers "github.com/GlebRadaev/teamvest/internal/handlers/wallet"
	"github.com/GlebRadaev/teamvest/internal/metrics"
	"github.com/GlebRadaev/teamvest/internal/service"
	"github.com/GlebRadaev/teamvest/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type MemberHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
}

type TeamHandler interface {
	GetPosition(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetSubtree(w http.ResponseWriter, r *http.Request)
	Rebuild(w http.ResponseWriter, r *http.Request)
}

type InvestmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Open(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	ProcessOwn(w http.ResponseWriter, r *http.Request)
	RunAccrual(w http.ResponseWriter, r *http.Request)
	ApplyROI(w http.ResponseWriter, r *http.Request)
	BatchApplyROI(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	MemberHandler     MemberHandler
	TeamHandler       TeamHandler
	InvestmentHandler InvestmentHandler
	WalletHandler     WalletHandler
	Tokens            auth.TokenValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		MemberHandler:     memberhandlers.New(s.MemberService),
		TeamHandler:       teamhandlers.New(s.TreeService),
		InvestmentHandler: investmenthandlers.New(s.InvestmentService, s.Engine),
		WalletHandler:     wallethandlers.New(s.WalletService),
		Tokens:            s.Tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/members/register", h.MemberHandler.Register)
		r.Post("/members/login", h.MemberHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.Tokens))

			r.Route("/tree", func(r chi.Router) {
				r.Get("/position", h.TeamHandler.GetPosition)
				r.Get("/stats", h.TeamHandler.GetStats)
				r.Get("/subtree", h.TeamHandler.GetSubtree)
			})
			r.Route("/investments", func(r chi.Router) {
				r.Get("/", h.InvestmentHandler.List)
				r.Post("/", h.InvestmentHandler.Open)
				r.Post("/{id}/topup", h.InvestmentHandler.TopUp)
				r.Post("/roi/process", h.InvestmentHandler.ProcessOwn)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Post("/tree/rebuild", h.TeamHandler.Rebuild)
				r.Post("/accrual/run", h.InvestmentHandler.RunAccrual)
				r.Post("/investments/roi/batch", h.InvestmentHandler.BatchApplyROI)
				r.Post("/investments/{id}/roi", h.InvestmentHandler.ApplyROI)
				r.Post("/investments/{id}/cancel", h.InvestmentHandler.Cancel)
				r.Post("/deposits", h.WalletHandler.Deposit)
				r.Post("/members/{id}/status", h.MemberHandler.SetStatus)
				r.Get("/members/{id}/reconcile", h.WalletHandler.Reconcile)
			})
		})
	})

	return r
}
