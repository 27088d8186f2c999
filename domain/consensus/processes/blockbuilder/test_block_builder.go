package blockbuilder

import (
	"sync/atomic"

	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/infrastructure/logger"
)

type testBlockBuilder struct {
	*blockBuilder
	nonce uint64
}

// NewTestBlockBuilder creates an instance of a TestBlockBuilder
func NewTestBlockBuilder(baseBlockBuilder model.BlockBuilder) model.TestBlockBuilder {
	return &testBlockBuilder{blockBuilder: baseBlockBuilder.(*blockBuilder)}
}

// BuildBlockWithParent builds a block over parentHash. Every block it builds
// gets a fresh nonce, so building twice with the same arguments yields two
// distinct blocks.
func (bb *testBlockBuilder) BuildBlockWithParent(parentHash *externalapi.DomainHash,
	coinbaseData *externalapi.DomainCoinbaseData, transactions []*externalapi.DomainTransaction) (
	*externalapi.DomainBlock, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "BuildBlockWithParent")
	defer onEnd()

	parent, err := bb.parentNode(parentHash)
	if err != nil {
		return nil, err
	}
	return bb.buildBlock(parent, coinbaseData, transactions, atomic.AddUint64(&bb.nonce, 1)), nil
}
