package memberservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/GlebRadaev/teamvest/pkg/auth"
	"github.com/GlebRadaev/teamvest/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=memberservice.go -destination=mock_memberservice.go -package=memberservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Member, error)
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.MemberStatus) (bool, error)
}

type Wallets interface {
	CreateWallet(ctx context.Context, memberID int64) (*domain.Wallet, error)
}

type Tree interface {
	AddMember(ctx context.Context, memberID int64, parentID *int64) (*domain.TreeNode, error)
	StatusChanged(ctx context.Context, memberID int64, from, to domain.MemberStatus) error
}

const tokenTTL = 15 * time.Minute

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo        Repo
	wallets     Wallets
	tree        Tree
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, wallets Wallets, tree Tree, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		repo:        repo,
		wallets:     wallets,
		tree:        tree,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the member, an empty wallet and the tree node in one
// transaction. An empty referralCode registers a root-level member.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.Member, error) {
	const op = "member.Register"
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, domain.NewValidationError(op, "login and password are required")
	}

	var referrerID *int64
	if referralCode != "" {
		id, err := validate.ParseReferralCode(referralCode)
		if err != nil {
			return nil, domain.NewValidationError(op, "referral code %q is invalid", referralCode)
		}
		referrer, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, domain.Transient(op, err)
		}
		if referrer == nil {
			return nil, domain.NewValidationError(op, "referral code %q does not belong to a member", referralCode)
		}
		referrerID = &id
	}

	existing, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, domain.Transient(op, err)
	}
	if existing != nil {
		zap.L().Info("member already exists", zap.String("login", login))
		return nil, domain.NewStateConflictError(op, "login %q is already taken", login)
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, domain.NewValidationError(op, "password must be %d to %d characters", auth.MinPasswordLength, auth.MaxPasswordLength)
	}
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	member := &domain.Member{
		Login:        login,
		PasswordHash: hashedPassword,
		ReferrerID:   referrerID,
		Status:       domain.MemberActive,
		Role:         domain.RoleMember,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.repo.Create(ctx, member)
		if err != nil {
			return domain.Transient(op, err)
		}
		member = created
		if _, err := s.wallets.CreateWallet(ctx, member.ID); err != nil {
			return err
		}
		_, err = s.tree.AddMember(ctx, member.ID, referrerID)
		return err
	})
	if err != nil {
		zap.L().Error("can't register member", zap.String("login", login), zap.Error(err))
		return nil, err
	}

	zap.L().Info("member successfully registered", zap.String("login", login), zap.Int64("memberID", member.ID))
	return member, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Member, error) {
	member, err := s.repo.FindByLogin(ctx, login)
	if err != nil || member == nil {
		zap.L().Info("invalid credentials", zap.String("login", login), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(member.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if member.Status == domain.MemberBlocked {
		return nil, domain.NewStateConflictError("member.Authenticate", "member %d is blocked", member.ID)
	}
	zap.L().Info("member successfully authenticated", zap.String("login", login))
	return member, nil
}

func (s *Service) GenerateToken(member *domain.Member) (string, error) {
	token, err := s.jwtService.GenerateJWT(member.ID, member.Role, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Transient("member.Get", err)
	}
	if member == nil {
		return nil, domain.NewNotFoundError("member.Get", "member %d not found", id)
	}
	return member, nil
}

// SetStatus changes the member status and keeps the upline's active team
// size in step.
func (s *Service) SetStatus(ctx context.Context, memberID int64, status domain.MemberStatus) (*domain.Member, error) {
	const op = "member.SetStatus"
	if !status.Valid() {
		return nil, domain.NewValidationError(op, "unknown status %q", status)
	}

	var member *domain.Member
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if member, err = s.Get(ctx, memberID); err != nil {
			return err
		}
		from := member.Status
		if from == status {
			return nil
		}
		applied, err := s.repo.UpdateStatus(ctx, memberID, from, status)
		if err != nil {
			return domain.Transient(op, err)
		}
		if !applied {
			return domain.NewStateConflictError(op, "member %d is no longer %s", memberID, from)
		}
		member.Status = status
		return s.tree.StatusChanged(ctx, memberID, from, status)
	})
	if err != nil {
		zap.L().Error("can't change member status", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("member status changed", zap.Int64("memberID", memberID), zap.String("status", string(status)))
	return member, nil
}
