package memberrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const memberColumns = "id, login, password_hash, referrer_id, status, role, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.Login, &m.PasswordHash, &m.ReferrerID, &m.Status, &m.Role, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Member, error) {
	member, err := scanMember(repo.db.QueryRow(ctx, "SELECT "+memberColumns+" FROM members WHERE login = $1", login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find member by login", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := scanMember(repo.db.QueryRow(ctx, "SELECT "+memberColumns+" FROM members WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find member", zap.Int64("memberID", id), zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (repo *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		INSERT INTO members (login, password_hash, referrer_id, status, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, member.Login, member.PasswordHash, member.ReferrerID, member.Status, member.Role).
		Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		zap.L().Error("can't save member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

// UpdateStatus moves the member from one status to another. It reports false
// when the member is no longer in the from status.
func (repo *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.MemberStatus) (bool, error) {
	tag, err := repo.db.Exec(ctx, "UPDATE members SET status = $1 WHERE id = $2 AND status = $3", to, id, from)
	if err != nil {
		zap.L().Error("can't update member status", zap.Int64("memberID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Statuses returns the status of every listed member that exists.
func (repo *Repository) Statuses(ctx context.Context, ids []int64) (map[int64]domain.MemberStatus, error) {
	rows, err := repo.db.Query(ctx, "SELECT id, status FROM members WHERE id = ANY($1)", ids)
	if err != nil {
		zap.L().Error("can't get member statuses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[int64]domain.MemberStatus, len(ids))
	for rows.Next() {
		var (
			id     int64
			status domain.MemberStatus
		)
		if err := rows.Scan(&id, &status); err != nil {
			zap.L().Error("can't scan member status", zap.Error(err))
			return nil, err
		}
		statuses[id] = status
	}
	return statuses, rows.Err()
}

// ListForRebuild returns every member in registration order.
func (repo *Repository) ListForRebuild(ctx context.Context) ([]domain.Member, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+memberColumns+" FROM members ORDER BY created_at, id")
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, *member)
	}
	return members, rows.Err()
}
