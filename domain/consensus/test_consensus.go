package consensus

import (
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

// TestConsensus wraps the Consensus interface with some methods that are needed by tests only
type TestConsensus interface {
	Consensus

	BuildBlockWithParent(parentHash *externalapi.DomainHash, coinbaseData *externalapi.DomainCoinbaseData,
		transactions []*externalapi.DomainTransaction) (*externalapi.DomainBlock, error)

	// AddBlockWithParent builds a block with given information and inserts it.
	// Returns the hash of the added block
	AddBlockWithParent(parentHash *externalapi.DomainHash, coinbaseData *externalapi.DomainCoinbaseData,
		transactions []*externalapi.DomainTransaction) (*externalapi.DomainHash, *externalapi.BlockInsertionResult, error)

	ChainNodeStore() model.ChainNodeStore
}

type testConsensus struct {
	*consensus
	testBlockBuilder model.TestBlockBuilder
}

func (tc *testConsensus) BuildBlockWithParent(parentHash *externalapi.DomainHash,
	coinbaseData *externalapi.DomainCoinbaseData, transactions []*externalapi.DomainTransaction) (
	*externalapi.DomainBlock, error) {

	tc.lock.RLock()
	defer tc.lock.RUnlock()

	return tc.testBlockBuilder.BuildBlockWithParent(parentHash, coinbaseData, transactions)
}

func (tc *testConsensus) AddBlockWithParent(parentHash *externalapi.DomainHash,
	coinbaseData *externalapi.DomainCoinbaseData, transactions []*externalapi.DomainTransaction) (
	*externalapi.DomainHash, *externalapi.BlockInsertionResult, error) {

	block, err := tc.BuildBlockWithParent(parentHash, coinbaseData, transactions)
	if err != nil {
		return nil, nil, err
	}
	result, err := tc.ValidateAndInsertBlock(block)
	if err != nil {
		return nil, nil, err
	}
	return result.BlockHash, result, nil
}

func (tc *testConsensus) ChainNodeStore() model.ChainNodeStore {
	return tc.chainNodeStore
}
