package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// TransactionPool holds transactions that were submitted but not yet
// included in any accepted block. It is safe for concurrent access.
type TransactionPool interface {
	Add(transaction *externalapi.DomainTransaction)
	Transactions() []*externalapi.DomainTransaction
	RemoveTransactions(transactions []*externalapi.DomainTransaction)
	Count() int
}
