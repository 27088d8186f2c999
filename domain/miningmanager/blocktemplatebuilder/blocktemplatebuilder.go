package blocktemplatebuilder

import (
	"github.com/kaspanet/forkledger/domain/consensus"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/miningmanager/model"
	"github.com/kaspanet/forkledger/infrastructure/logger"
)

// blockTemplateBuilder creates block templates for a miner to consume
type blockTemplateBuilder struct {
	consensus consensus.Consensus
}

// New creates a new blockTemplateBuilder
func New(consensus consensus.Consensus) model.BlockTemplateBuilder {
	return &blockTemplateBuilder{
		consensus: consensus,
	}
}

// GetBlockTemplate builds a block over the current best block carrying the
// largest set of pooled transactions the validation oracle accepts against
// the best UTXO set.
//
// The best block may change between selecting the transactions and building
// the block, in which case the template is rejected when submitted.
func (btb *blockTemplateBuilder) GetBlockTemplate(coinbaseData *externalapi.DomainCoinbaseData) (
	*externalapi.DomainBlock, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "GetBlockTemplate")
	defer onEnd()

	candidates := btb.consensus.TransactionPool().Transactions()
	selected, _ := btb.consensus.ValidateTransactions(btb.consensus.BestUTXOSet(), candidates)
	log.Debugf("Selected %d out of %d pooled transactions for a block template", len(selected), len(candidates))

	return btb.consensus.BuildBlock(coinbaseData, selected)
}
