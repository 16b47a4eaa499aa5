package repository

import (
	"context"

	"github.com/fintrackhq/fintrack/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence.
// ListByUser returns records in insertion order.
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) error
	ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error)
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, t *entity.Transaction) error
	Delete(ctx context.Context, id string) error
}
