package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fintrackhq/fintrack/internal/domain/entity"
	"github.com/fintrackhq/fintrack/internal/domain/repository"
	"github.com/fintrackhq/fintrack/pkg/apperr"
	"github.com/fintrackhq/fintrack/pkg/helpers"
)

const listCacheTTL = 5 * time.Minute

type TransactionService struct {
	Repo   repository.TransactionRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewTransactionService(repo repository.TransactionRepository, rdb *redis.Client, logger *logrus.Logger) *TransactionService {
	return &TransactionService{Repo: repo, Redis: rdb, Logger: logger}
}

type CreateTransactionInput struct {
	Type        string
	Amount      float64
	Description string
	Category    string
}

// UpdateTransactionInput fields are merged over the stored record; the
// zero value means "no change", never "clear".
type UpdateTransactionInput struct {
	Type        string
	Amount      float64
	Description string
	Category    string
}

func listCacheKey(userID string) string {
	return "user:transactions:" + userID
}

func validTransactionType(t string) bool {
	return t == entity.TransactionTypeAsset || t == entity.TransactionTypeLiability
}

// Create persists a transaction owned by the authenticated identity.
func (s *TransactionService) Create(ctx context.Context, userID string, in CreateTransactionInput) (*entity.Transaction, error) {
	if !validTransactionType(in.Type) {
		return nil, apperr.Validation("type must be one of: asset, liability")
	}
	if in.Amount <= 0 {
		return nil, apperr.Validation("amount must be greater than 0")
	}

	t := &entity.Transaction{
		UserID:      userID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("create transaction failed")
		return nil, apperr.Persistence(err)
	}
	s.invalidateList(ctx, userID)
	return t, nil
}

// ListMine returns every transaction owned by the identity, in insertion
// order, through a per-user read cache. Cache failures fall back to the
// store.
func (s *TransactionService) ListMine(ctx context.Context, userID string) ([]entity.Transaction, error) {
	if s.Redis != nil {
		var cached []entity.Transaction
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, listCacheKey(userID), &cached)
		if err != nil {
			s.Logger.WithError(err).Warn("transaction list cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	list, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("list transactions failed")
		return nil, apperr.Persistence(err)
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, listCacheKey(userID), list, listCacheTTL); err != nil {
			s.Logger.WithError(err).Warn("transaction list cache write failed")
		}
	}
	return list, nil
}

// GetByID resolves a transaction for the identity. A missing id is
// not-found; an existing record owned by someone else is an authorization
// failure, so the two cases stay distinguishable.
func (s *TransactionService) GetByID(ctx context.Context, userID, id string) (*entity.Transaction, error) {
	return s.resolveOwned(ctx, userID, id)
}

// Update merges the supplied fields over the stored record. Ownership is
// checked the same way as GetByID and never changes.
func (s *TransactionService) Update(ctx context.Context, userID, id string, in UpdateTransactionInput) (*entity.Transaction, error) {
	if in.Type != "" && !validTransactionType(in.Type) {
		return nil, apperr.Validation("type must be one of: asset, liability")
	}
	if in.Amount < 0 {
		return nil, apperr.Validation("amount must be greater than 0")
	}

	t, err := s.resolveOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Type != "" {
		t.Type = in.Type
	}
	if in.Amount > 0 {
		t.Amount = in.Amount
	}
	if in.Description != "" {
		t.Description = in.Description
	}
	if in.Category != "" {
		t.Category = in.Category
	}

	if err := s.Repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Transaction not found")
		}
		s.Logger.WithError(err).WithField("transaction_id", id).Error("update transaction failed")
		return nil, apperr.Persistence(err)
	}
	s.invalidateList(ctx, userID)
	return t, nil
}

// Delete removes a transaction after the existence and ownership checks.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.resolveOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Transaction not found")
		}
		s.Logger.WithError(err).WithField("transaction_id", id).Error("delete transaction failed")
		return apperr.Persistence(err)
	}
	s.invalidateList(ctx, userID)
	return nil
}

func (s *TransactionService) resolveOwned(ctx context.Context, userID, id string) (*entity.Transaction, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Transaction not found")
		}
		s.Logger.WithError(err).WithField("transaction_id", id).Error("get transaction failed")
		return nil, apperr.Persistence(err)
	}
	if t.UserID != userID {
		return nil, apperr.Authentication("You do not have access to this transaction")
	}
	return t, nil
}

func (s *TransactionService) invalidateList(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, listCacheKey(userID)); err != nil {
		s.Logger.WithError(err).Warn("transaction list cache invalidation failed")
	}
}
