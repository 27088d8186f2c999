package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// ChainNodeStore owns all retained chain nodes, keyed by block hash
type ChainNodeStore interface {
	Insert(node *ChainNode) error
	Get(blockHash *externalapi.DomainHash) (*ChainNode, bool)
	Has(blockHash *externalapi.DomainHash) bool
	Replace(node *ChainNode) error
	Delete(blockHash *externalapi.DomainHash) error
	ChildCount(blockHash *externalapi.DomainHash) int
	HashesAtHeight(height uint64) []*externalapi.DomainHash
	Count() int
}
