package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// BlockProcessor is responsible for processing incoming blocks
// and keeping track of the best block
type BlockProcessor interface {
	InsertGenesisBlock(genesis *externalapi.DomainBlock) (*externalapi.DomainHash, error)
	ValidateAndInsertBlock(block *externalapi.DomainBlock) (*externalapi.BlockInsertionResult, error)
	BestNode() *ChainNode
}
