package memberservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/GlebRadaev/teamvest/pkg/auth"
	"github.com/GlebRadaev/teamvest/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo    *MockRepo
	wallets *MockWallets
	tree    *MockTree
	hash    *auth.MockHashServiceInterface
	jwt     *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    NewMockRepo(ctrl),
		wallets: NewMockWallets(ctrl),
		tree:    NewMockTree(ctrl),
		hash:    auth.NewMockHashServiceInterface(ctrl),
		jwt:     auth.NewMockJWTServiceInterface(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.repo, m.wallets, m.tree, txManager, m.hash, m.jwt), m
}

func TestRegister(t *testing.T) {
	referrerCode := validate.ReferralCode(1)
	tests := []struct {
		name          string
		login         string
		password      string
		referralCode  string
		prepareMock   func(m mocks)
		expectedError error
		check         func(t *testing.T, member *domain.Member)
	}{
		{
			name:     "Root member",
			login:    "alice",
			password: "secret",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, member *domain.Member) (*domain.Member, error) {
					member.ID = 1
					return member, nil
				})
				m.wallets.EXPECT().CreateWallet(gomock.Any(), int64(1)).Return(&domain.Wallet{MemberID: 1}, nil)
				m.tree.EXPECT().AddMember(gomock.Any(), int64(1), (*int64)(nil)).Return(&domain.TreeNode{UserID: 1, Level: 1}, nil)
			},
			check: func(t *testing.T, member *domain.Member) {
				assert.Equal(t, int64(1), member.ID)
				assert.Equal(t, "hashed", member.PasswordHash)
				assert.Equal(t, domain.MemberActive, member.Status)
				assert.Equal(t, domain.RoleMember, member.Role)
				assert.Nil(t, member.ReferrerID)
			},
		},
		{
			name:         "Referred member",
			login:        "bob",
			password:     "secret",
			referralCode: referrerCode,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.Member{ID: 1}, nil)
				m.repo.EXPECT().FindByLogin(gomock.Any(), "bob").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, member *domain.Member) (*domain.Member, error) {
					member.ID = 2
					return member, nil
				})
				m.wallets.EXPECT().CreateWallet(gomock.Any(), int64(2)).Return(&domain.Wallet{MemberID: 2}, nil)
				m.tree.EXPECT().AddMember(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, parentID *int64) (*domain.TreeNode, error) {
					require.NotNil(t, parentID)
					assert.Equal(t, int64(1), *parentID)
					return &domain.TreeNode{UserID: 2, Level: 2}, nil
				})
			},
			check: func(t *testing.T, member *domain.Member) {
				require.NotNil(t, member.ReferrerID)
				assert.Equal(t, int64(1), *member.ReferrerID)
			},
		},
		{
			name:          "Empty password",
			login:         "alice",
			prepareMock:   func(m mocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Mistyped referral code",
			login:         "bob",
			password:      "secret",
			referralCode:  "13",
			prepareMock:   func(m mocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:         "Referral code of unknown member",
			login:        "bob",
			password:     "secret",
			referralCode: validate.ReferralCode(404),
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Login taken",
			login:    "alice",
			password: "secret",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.Member{ID: 1}, nil)
			},
			expectedError: domain.ErrStateConflict,
		},
		{
			name:     "Password rejected by hash policy",
			login:    "alice",
			password: "abc",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				m.hash.EXPECT().HashPassword("abc").Return("", auth.ErrPasswordTooShort)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Tree insert fails",
			login:    "alice",
			password: "secret",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, member *domain.Member) (*domain.Member, error) {
					member.ID = 1
					return member, nil
				})
				m.wallets.EXPECT().CreateWallet(gomock.Any(), int64(1)).Return(&domain.Wallet{MemberID: 1}, nil)
				m.tree.EXPECT().AddMember(gomock.Any(), int64(1), (*int64)(nil)).
					Return(nil, domain.NewStateConflictError("tree.AddMember", "member 1 already has a tree node"))
			},
			expectedError: domain.ErrStateConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			member, err := service.Register(context.Background(), tt.login, tt.password, tt.referralCode)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, member)
				return
			}
			require.NoError(t, err)
			tt.check(t, member)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Valid credentials",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.Member{ID: 1, PasswordHash: "hashed", Status: domain.MemberActive}, nil)
				m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)
			},
		},
		{
			name: "Unknown login",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Lookup failure",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, errors.New("database error"))
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.Member{ID: 1, PasswordHash: "hashed"}, nil)
				m.hash.EXPECT().ComparePassword("hashed", "secret").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Blocked member",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.Member{ID: 1, PasswordHash: "hashed", Status: domain.MemberBlocked}, nil)
				m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)
			},
			expectedError: domain.ErrStateConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			member, err := service.Authenticate(context.Background(), "alice", "secret")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), member.ID)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)
	m.jwt.EXPECT().GenerateJWT(int64(1), domain.RoleAdmin, gomock.Any()).Return("token", nil)

	token, err := service.GenerateToken(&domain.Member{ID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestSetStatus(t *testing.T) {
	t.Run("deactivation updates upline", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&domain.Member{ID: 2, Status: domain.MemberActive}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), domain.MemberActive, domain.MemberInactive).Return(true, nil)
		m.tree.EXPECT().StatusChanged(gomock.Any(), int64(2), domain.MemberActive, domain.MemberInactive).Return(nil)

		member, err := service.SetStatus(context.Background(), 2, domain.MemberInactive)
		require.NoError(t, err)
		assert.Equal(t, domain.MemberInactive, member.Status)
	})

	t.Run("concurrent change wins", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&domain.Member{ID: 2, Status: domain.MemberActive}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), domain.MemberActive, domain.MemberInactive).Return(false, nil)
		m.tree.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := service.SetStatus(context.Background(), 2, domain.MemberInactive)
		assert.ErrorIs(t, err, domain.ErrStateConflict)
	})

	t.Run("storage failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&domain.Member{ID: 2, Status: domain.MemberActive}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), domain.MemberActive, domain.MemberBlocked).Return(false, errors.New("db down"))

		_, err := service.SetStatus(context.Background(), 2, domain.MemberBlocked)
		assert.ErrorIs(t, err, domain.ErrTransientStorage)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&domain.Member{ID: 2, Status: domain.MemberBlocked}, nil)

		_, err := service.SetStatus(context.Background(), 2, domain.MemberBlocked)
		require.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.SetStatus(context.Background(), 2, "suspended")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown member", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, nil)
		_, err := service.SetStatus(context.Background(), 9, domain.MemberBlocked)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
