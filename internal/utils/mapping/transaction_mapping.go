package mapping

import (
	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/bizbooks/ledger/internal/models"
)

// ToModelTransaction converts a domain journal entry to its storage model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:    d.TransactionID,
		Sequence:         d.Sequence,
		Type:             models.TransactionType(d.Type),
		Amount:           d.Amount,
		OccurredAt:       d.OccurredAt,
		Description:      d.Description,
		AccountID:        d.AccountID,
		FromAccountID:    d.FromAccountID,
		ToAccountID:      d.ToAccountID,
		TransferID:       d.TransferID,
		ProjectID:        d.ProjectID,
		CounterpartyID:   d.CounterpartyID,
		CounterpartyRole: string(d.CounterpartyRole),
		ReversalOf:       d.ReversalOf,
		ReversedBy:       d.ReversedBy,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a storage model entry to its domain form.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:    m.TransactionID,
		Sequence:         m.Sequence,
		Type:             domain.TransactionType(m.Type),
		Amount:           m.Amount,
		OccurredAt:       m.OccurredAt,
		Description:      m.Description,
		AccountID:        m.AccountID,
		FromAccountID:    m.FromAccountID,
		ToAccountID:      m.ToAccountID,
		TransferID:       m.TransferID,
		ProjectID:        m.ProjectID,
		CounterpartyID:   m.CounterpartyID,
		CounterpartyRole: domain.CounterpartyRole(m.CounterpartyRole),
		ReversalOf:       m.ReversalOf,
		ReversedBy:       m.ReversedBy,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model entries.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
