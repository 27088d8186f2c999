package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// BlockBuilder is responsible for creating blocks over the best block
type BlockBuilder interface {
	BuildBlock(coinbaseData *externalapi.DomainCoinbaseData, transactions []*externalapi.DomainTransaction) (*externalapi.DomainBlock, error)
}

// TestBlockBuilder adds to the main BlockBuilder methods required by tests
type TestBlockBuilder interface {
	BlockBuilder

	// BuildBlockWithParent builds a block over any retained parent
	BuildBlockWithParent(parentHash *externalapi.DomainHash, coinbaseData *externalapi.DomainCoinbaseData,
		transactions []*externalapi.DomainTransaction) (*externalapi.DomainBlock, error)
}
