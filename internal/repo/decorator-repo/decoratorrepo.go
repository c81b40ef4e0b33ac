package decoratorrepo

import (
	"context"
	"errors"

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

func (r *Repository) Create(ctx context.Context, decorator *domain.Decorator) (*domain.Decorator, error) {
	query := `
        INSERT INTO decorators (name, email, status, earnings)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, decorator.Name, decorator.Email, decorator.Status, decorator.Earnings).
		Scan(&decorator.ID, &decorator.CreatedAt)
	if err != nil {
		zap.L().Error("can't save decorator application", zap.Error(err))
		return nil, err
	}
	return decorator, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Decorator, error) {
	query := `
        SELECT id, name, email, status, earnings, created_at
        FROM decorators
        WHERE id = $1
    `
	var d domain.Decorator
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Email, &d.Status, &d.Earnings, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find decorator", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) FindAll(ctx context.Context, status string) ([]domain.Decorator, error) {
	query := `
        SELECT id, name, email, status, earnings, created_at
        FROM decorators
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't get decorators", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var decorators []domain.Decorator
	for rows.Next() {
		var d domain.Decorator
		err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Status, &d.Earnings, &d.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan decorator row", zap.Error(err))
			return nil, err
		}
		decorators = append(decorators, d)
	}
	return decorators, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status string) (bool, error) {
	query := `
        UPDATE decorators
        SET status = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update decorator status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddEarnings accrues a booking price atomically at the store. The earnings
// accumulator only ever grows, concurrent assignments must not lose updates.
func (r *Repository) AddEarnings(ctx context.Context, id string, amount float64) error {
	query := `
        UPDATE decorators
        SET earnings = earnings + $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("can't add decorator earnings", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM decorators WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete decorator", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
