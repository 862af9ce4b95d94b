package services

import (
	"errors"
	"fmt"
	"log/slog"

	"spendsense/internal/models"
	"spendsense/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrEmptyBatch         = errors.New("transaction batch is empty")
	ErrBatchTooLarge      = errors.New("transaction batch exceeds the maximum size")
	ErrInvalidTransaction = errors.New("invalid transaction in batch")
)

type transactionIngestService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryService CategoryServiceInterface
	metrics         MetricsRecorderInterface
	maxBatchSize    int
}

// NewTransactionIngestService creates a new TransactionIngestServiceInterface instance
func NewTransactionIngestService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryService CategoryServiceInterface,
	metrics MetricsRecorderInterface,
	maxBatchSize int,
) TransactionIngestServiceInterface {
	return &transactionIngestService{
		transactionRepo: transactionRepo,
		categoryService: categoryService,
		metrics:         metrics,
		maxBatchSize:    maxBatchSize,
	}
}

// IngestBatch normalizes, categorizes, and persists a batch of feed entries
// for one user. Sign normalization happens exactly once, here: downstream
// consumers (including the aggregator) only ever see the canonical signed
// amount convention.
func (s *transactionIngestService) IngestBatch(userID uuid.UUID, transactions []*models.Transaction) ([]*models.Transaction, error) {
	if len(transactions) == 0 {
		return nil, ErrEmptyBatch
	}

	if s.maxBatchSize > 0 && len(transactions) > s.maxBatchSize {
		if s.metrics != nil {
			s.metrics.RecordIngestRejected()
		}
		return nil, ErrBatchTooLarge
	}

	undated := 0
	for _, txn := range transactions {
		txn.UserID = userID
		txn.Normalize()
		txn.Category = s.categoryService.Categorize(txn)

		if txn.BookedAt == nil {
			undated++
		}

		if err := txn.Validate(); err != nil {
			if s.metrics != nil {
				s.metrics.RecordIngestRejected()
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
		}
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		slog.Error("failed to persist transaction batch",
			"user_id", userID,
			"batch_size", len(transactions),
			"error", err)
		return nil, fmt.Errorf("failed to persist transactions: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordIngestedTransactions(len(transactions))
	}

	slog.Info("transaction batch ingested",
		"user_id", userID,
		"batch_size", len(transactions),
		"undated", undated)

	return transactions, nil
}

// ListTransactions pages through a user's transactions, optionally filtered
// by category and booking month. A month filter always excludes undated
// entries, since they belong to no month.
func (s *transactionIngestService) ListTransactions(userID uuid.UUID, category string, month *models.MonthKey, offset, limit int) ([]models.Transaction, int64, error) {
	var (
		transactions []models.Transaction
		total        int64
		err          error
	)

	switch {
	case month != nil:
		transactions, total, err = s.listByMonth(userID, category, *month, offset, limit)
	case category != "":
		transactions, total, err = s.transactionRepo.GetByUserAndCategory(userID, category, offset, limit)
	default:
		transactions, total, err = s.transactionRepo.GetByUserID(userID, offset, limit)
	}

	if err != nil {
		slog.Error("failed to list transactions",
			"user_id", userID,
			"category", category,
			"error", err)
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// listByMonth fetches one month's dated transactions and pages over them in
// memory. A single user books at most a few hundred entries a month, so the
// range fetch stays small.
func (s *transactionIngestService) listByMonth(userID uuid.UUID, category string, month models.MonthKey, offset, limit int) ([]models.Transaction, int64, error) {
	all, err := s.transactionRepo.GetByUserAndDateRange(userID, month.Start(), month.End())
	if err != nil {
		return nil, 0, err
	}

	filtered := all[:0:0]
	for _, txn := range all {
		if category == "" || txn.Category == category {
			filtered = append(filtered, txn)
		}
	}

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []models.Transaction{}, total, nil
	}

	end := offset + limit
	if limit <= 0 || end > len(filtered) {
		end = len(filtered)
	}

	return filtered[offset:end], total, nil
}

// UsedCategories lists the categories the user spent in during one month.
func (s *transactionIngestService) UsedCategories(userID uuid.UUID, month models.MonthKey) ([]string, error) {
	categories, err := s.transactionRepo.DistinctCategories(userID, month.Start(), month.End())
	if err != nil {
		return nil, fmt.Errorf("failed to list used categories: %w", err)
	}
	return categories, nil
}
