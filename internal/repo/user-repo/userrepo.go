package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, display_name, photo_url, role, created_at FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.DisplayName, &user.PhotoURL, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, display_name, photo_url, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.DisplayName, user.PhotoURL, user.Role).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// SetRoleByEmail flips the user role, used when a decorator application is
// approved. Matching no user is not an error: the application may predate
// the account.
func (repo *Repository) SetRoleByEmail(ctx context.Context, email string, role string) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET role = $1 WHERE email = $2", role, email)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return err
	}
	return nil
}
