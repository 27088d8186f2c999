package mempool

import (
	"sync"

	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
)

type mempoolTransaction struct {
	transaction   *externalapi.DomainTransaction
	transactionID *externalapi.DomainTransactionID
}

// mempool holds transactions that were submitted but not yet included in
// an accepted block. Transactions are kept in submission order and are not
// validated on the way in.
type mempool struct {
	mtx          sync.RWMutex
	transactions []*mempoolTransaction
}

// New creates a new, empty, transaction pool
func New() model.TransactionPool {
	return &mempool{}
}

// Add appends a copy of transaction to the pool
func (mp *mempool) Add(transaction *externalapi.DomainTransaction) {
	transactionClone := transaction.Clone()
	transactionID := consensushashing.TransactionID(transactionClone)

	mp.mtx.Lock()
	defer mp.mtx.Unlock()

	mp.transactions = append(mp.transactions, &mempoolTransaction{
		transaction:   transactionClone,
		transactionID: transactionID,
	})
	log.Tracef("Added transaction %s to the pool. Pool size: %d", transactionID, len(mp.transactions))
}

// Transactions returns copies of all pooled transactions in submission order
func (mp *mempool) Transactions() []*externalapi.DomainTransaction {
	mp.mtx.RLock()
	defer mp.mtx.RUnlock()

	transactions := make([]*externalapi.DomainTransaction, len(mp.transactions))
	for i, mempoolTx := range mp.transactions {
		transactions[i] = mempoolTx.transaction.Clone()
	}
	return transactions
}

// RemoveTransactions drops every pooled transaction whose ID matches one of
// transactions
func (mp *mempool) RemoveTransactions(transactions []*externalapi.DomainTransaction) {
	if len(transactions) == 0 {
		return
	}
	toRemove := make(map[externalapi.DomainTransactionID]struct{}, len(transactions))
	for _, transaction := range transactions {
		toRemove[*consensushashing.TransactionID(transaction)] = struct{}{}
	}

	mp.mtx.Lock()
	defer mp.mtx.Unlock()

	remaining := mp.transactions[:0]
	for _, mempoolTx := range mp.transactions {
		if _, ok := toRemove[*mempoolTx.transactionID]; ok {
			continue
		}
		remaining = append(remaining, mempoolTx)
	}
	for i := len(remaining); i < len(mp.transactions); i++ {
		mp.transactions[i] = nil
	}
	removedCount := len(mp.transactions) - len(remaining)
	mp.transactions = remaining
	if removedCount > 0 {
		log.Debugf("Removed %d transactions from the pool. Pool size: %d", removedCount, len(mp.transactions))
	}
}

// Count returns the number of pooled transactions
func (mp *mempool) Count() int {
	mp.mtx.RLock()
	defer mp.mtx.RUnlock()

	return len(mp.transactions)
}
