package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// CoinbaseManager builds coinbase transactions and applies their outputs
type CoinbaseManager interface {
	ExpectedCoinbaseTransaction(height uint64, coinbaseData *externalapi.DomainCoinbaseData) *externalapi.DomainTransaction
	AddCoinbaseToUTXOSet(coinbase *externalapi.DomainTransaction, utxoSet externalapi.UTXOSet)
}
