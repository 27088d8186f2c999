package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// TransactionValidator is the validation oracle consensus consults for
// every candidate block.
//
// ValidateTransactions returns the accepted subset of transactions together
// with the UTXO set resulting from applying them to utxoSet. utxoSet itself
// must not be mutated. Consensus accepts a block only if every submitted
// transaction is accepted; how the subset is chosen is up to the
// implementation.
type TransactionValidator interface {
	ValidateTransactions(utxoSet externalapi.UTXOSet, transactions []*externalapi.DomainTransaction) (
		acceptedTransactions []*externalapi.DomainTransaction, resultingUTXOSet externalapi.UTXOSet)
}
