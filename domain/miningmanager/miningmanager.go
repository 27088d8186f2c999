package miningmanager

import (
	"github.com/kaspanet/forkledger/domain/consensus"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
	miningmanagermodel "github.com/kaspanet/forkledger/domain/miningmanager/model"
	"github.com/pkg/errors"
)

// ErrTransactionRejected indicates that the validation oracle rejected a
// transaction against the current best UTXO set
var ErrTransactionRejected = errors.New("transaction rejected")

// MiningManager creates block templates for mining as well as maintaining
// known transactions that have not yet been added to any block
type MiningManager interface {
	GetBlockTemplate(coinbaseData *externalapi.DomainCoinbaseData) (*externalapi.DomainBlock, error)
	SubmitBlock(block *externalapi.DomainBlock) bool
	HandleNewBlock(block *externalapi.DomainBlock)
	ValidateAndInsertTransaction(transaction *externalapi.DomainTransaction) error
	AllTransactions() []*externalapi.DomainTransaction
}

type miningManager struct {
	consensus            consensus.Consensus
	blockTemplateBuilder miningmanagermodel.BlockTemplateBuilder
}

// GetBlockTemplate creates a block template for a miner to consume
func (mm *miningManager) GetBlockTemplate(coinbaseData *externalapi.DomainCoinbaseData) (*externalapi.DomainBlock, error) {
	return mm.blockTemplateBuilder.GetBlockTemplate(coinbaseData)
}

// SubmitBlock inserts block into consensus and, if it was accepted, drops
// its transactions from the pool
func (mm *miningManager) SubmitBlock(block *externalapi.DomainBlock) bool {
	if !mm.consensus.AddBlock(block) {
		return false
	}
	mm.HandleNewBlock(block)
	return true
}

// HandleNewBlock handles a new block that was just accepted by consensus
func (mm *miningManager) HandleNewBlock(block *externalapi.DomainBlock) {
	mm.consensus.TransactionPool().RemoveTransactions(block.Transactions)
}

// ValidateAndInsertTransaction checks transaction alone against the best
// UTXO set and, if the oracle accepts it, adds it to the set of known
// transactions that have not yet been added to any block
func (mm *miningManager) ValidateAndInsertTransaction(transaction *externalapi.DomainTransaction) error {
	accepted, _ := mm.consensus.ValidateTransactions(mm.consensus.BestUTXOSet(),
		[]*externalapi.DomainTransaction{transaction})
	if len(accepted) == 0 {
		return errors.Wrapf(ErrTransactionRejected, "transaction %s", consensushashing.TransactionID(transaction))
	}
	mm.consensus.AddTransaction(transaction)
	log.Debugf("Accepted transaction %s into the pool", consensushashing.TransactionID(transaction))
	return nil
}

// AllTransactions returns copies of all pooled transactions
func (mm *miningManager) AllTransactions() []*externalapi.DomainTransaction {
	return mm.consensus.TransactionPool().Transactions()
}
