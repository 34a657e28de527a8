package repositories

import (
	"github.com/nusava/nusava-backend/database"
	"github.com/nusava/nusava-backend/models"
)

// TransactionRepository handles database reads for transactions.
// The API never creates transactions; the dashboard only aggregates them.
type TransactionRepository struct{}

// NewTransactionRepository creates a new transaction repository instance
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// SumCompleted totals the amount of completed transactions
func (r *TransactionRepository) SumCompleted() (float64, error) {
	var total float64
	err := database.DB.Model(&models.Transaction{}).
		Where("status = ?", models.TransactionStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
