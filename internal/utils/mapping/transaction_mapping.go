package mapping

import (
	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/cherryfin/loanledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		TransactionDate: d.TransactionDate,
		Comment:         d.Comment,
		AmountPaid:      d.AmountPaid,
		Balance:         d.Balance,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		TransactionDate: m.TransactionDate,
		Comment:         m.Comment,
		AmountPaid:      m.AmountPaid,
		Balance:         m.Balance,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
