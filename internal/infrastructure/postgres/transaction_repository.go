package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackhq/fintrack/internal/domain/entity"
	"github.com/fintrackhq/fintrack/internal/domain/repository"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (id, user_id, type, amount, description, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, t.ID, t.UserID, t.Type, t.Amount, t.Description, t.Category)

	return row.Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, amount, description, category, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Transaction, 0)
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Description,
			&t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t := &entity.Transaction{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, type, amount, description, category, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Description,
		&t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *entity.Transaction) error {
	t.UpdatedAt = time.Now()

	// user_id is deliberately absent from the SET list; ownership is
	// immutable after creation.
	res, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET type = $1, amount = $2, description = $3, category = $4, updated_at = $5
		WHERE id = $6
	`, t.Type, t.Amount, t.Description, t.Category, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)
