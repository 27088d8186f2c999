package blockbuilder

import (
	"time"

	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/constants"
	"github.com/kaspanet/forkledger/infrastructure/logger"
	"github.com/pkg/errors"
)

type blockBuilder struct {
	coinbaseManager model.CoinbaseManager
	blockProcessor  model.BlockProcessor
	chainNodeStore  model.ChainNodeStore
}

// New creates a new instance of a BlockBuilder
func New(
	coinbaseManager model.CoinbaseManager,
	blockProcessor model.BlockProcessor,
	chainNodeStore model.ChainNodeStore,
) model.BlockBuilder {

	return &blockBuilder{
		coinbaseManager: coinbaseManager,
		blockProcessor:  blockProcessor,
		chainNodeStore:  chainNodeStore,
	}
}

// BuildBlock builds a block over the best block, with the given
// coinbaseData and the given transactions. The transactions are not
// validated.
func (bb *blockBuilder) BuildBlock(coinbaseData *externalapi.DomainCoinbaseData,
	transactions []*externalapi.DomainTransaction) (*externalapi.DomainBlock, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "BuildBlock")
	defer onEnd()

	return bb.buildBlock(bb.blockProcessor.BestNode(), coinbaseData, transactions, 0), nil
}

func (bb *blockBuilder) parentNode(parentHash *externalapi.DomainHash) (*model.ChainNode, error) {
	parent, ok := bb.chainNodeStore.Get(parentHash)
	if !ok {
		return nil, errors.Errorf("parent %s is not retained", parentHash)
	}
	return parent, nil
}

func (bb *blockBuilder) buildBlock(parent *model.ChainNode, coinbaseData *externalapi.DomainCoinbaseData,
	transactions []*externalapi.DomainTransaction, nonce uint64) *externalapi.DomainBlock {

	coinbase := bb.coinbaseManager.ExpectedCoinbaseTransaction(parent.Height()+1, coinbaseData)
	transactionsClone := make([]*externalapi.DomainTransaction, len(transactions))
	for i, transaction := range transactions {
		transactionsClone[i] = transaction.Clone()
	}

	return &externalapi.DomainBlock{
		Header: &externalapi.DomainBlockHeader{
			Version:            constants.BlockVersion,
			ParentHash:         parent.Hash().Clone(),
			TimeInMilliseconds: bb.newBlockTime(parent),
			Nonce:              nonce,
		},
		Transactions: transactionsClone,
		Coinbase:     coinbase,
	}
}

// newBlockTime returns the current time, or one millisecond after the
// parent's time if the clock is behind it
func (bb *blockBuilder) newBlockTime(parent *model.ChainNode) int64 {
	now := time.Now().UnixMilli()
	parentTime := parent.Block().Header.TimeInMilliseconds
	if now <= parentTime {
		return parentTime + 1
	}
	return now
}
