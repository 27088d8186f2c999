package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// PruningManager enforces the retention window over the ChainNodeStore
type PruningManager interface {
	// IsExtendable returns whether a block at height could still be the
	// parent of an accepted block while the best block is at bestHeight
	IsExtendable(height uint64, bestHeight uint64) bool
	// Prune releases and evicts whatever the retention window no longer
	// needs, and returns the hashes of evicted nodes
	Prune(bestHeight uint64) ([]*externalapi.DomainHash, error)
}
