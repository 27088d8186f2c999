package blockprocessor

import (
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

// blockProcessor is responsible for processing incoming blocks
// and keeping track of the best block
type blockProcessor struct {
	transactionValidator model.TransactionValidator
	coinbaseManager      model.CoinbaseManager
	pruningManager       model.PruningManager
	chainNodeStore       model.ChainNodeStore

	bestHash *externalapi.DomainHash
}

// New instantiates a new BlockProcessor
func New(
	transactionValidator model.TransactionValidator,
	coinbaseManager model.CoinbaseManager,
	pruningManager model.PruningManager,
	chainNodeStore model.ChainNodeStore) model.BlockProcessor {

	return &blockProcessor{
		transactionValidator: transactionValidator,
		coinbaseManager:      coinbaseManager,
		pruningManager:       pruningManager,
		chainNodeStore:       chainNodeStore,
	}
}

// BestNode returns the node of the best block, or nil before genesis was
// inserted
func (bp *blockProcessor) BestNode() *model.ChainNode {
	if bp.bestHash == nil {
		return nil
	}
	node, _ := bp.chainNodeStore.Get(bp.bestHash)
	return node
}
