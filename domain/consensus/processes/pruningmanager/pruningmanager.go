package pruningmanager

import (
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/infrastructure/logger"
)

// pruningManager enforces the retention window.
//
// A node whose height is below bestHeight-cutoffAge can never be the parent
// of an accepted block again. Its UTXO set is released, and if it has no
// retained children and is not genesis, it is evicted together with every
// ancestor that is left childless and is itself out of the window. Ancestors
// of extendable nodes are never evicted, so every retained non-genesis node
// keeps a retained parent.
type pruningManager struct {
	chainNodeStore model.ChainNodeStore

	cutoffAge      uint64
	disablePruning bool

	// every height below releasedBelowHeight was already processed
	releasedBelowHeight uint64
}

// New instantiates a new PruningManager
func New(chainNodeStore model.ChainNodeStore, cutoffAge uint64, disablePruning bool) model.PruningManager {
	return &pruningManager{
		chainNodeStore:      chainNodeStore,
		cutoffAge:           cutoffAge,
		disablePruning:      disablePruning,
		releasedBelowHeight: model.GenesisHeight,
	}
}

// IsExtendable returns whether a child of a block at height would still be
// accepted. Heights are compared as signed values so that short chains
// never underflow.
func (pm *pruningManager) IsExtendable(height uint64, bestHeight uint64) bool {
	return int64(height)+1 > int64(bestHeight)-int64(pm.cutoffAge)
}

func (pm *pruningManager) Prune(bestHeight uint64) ([]*externalapi.DomainHash, error) {
	if pm.disablePruning {
		return nil, nil
	}
	threshold := int64(bestHeight) - int64(pm.cutoffAge)
	if threshold <= int64(pm.releasedBelowHeight) {
		return nil, nil
	}

	onEnd := logger.LogAndMeasureExecutionTime(log, "pruningManager.Prune")
	defer onEnd()

	var evicted []*externalapi.DomainHash
	for height := pm.releasedBelowHeight; height < uint64(threshold); height++ {
		for _, hash := range pm.chainNodeStore.HashesAtHeight(height) {
			node, ok := pm.chainNodeStore.Get(hash)
			if !ok {
				continue
			}
			if node.HasUTXOSet() {
				err := pm.chainNodeStore.Replace(node.WithoutUTXOSet())
				if err != nil {
					return nil, err
				}
			}
			evictedFromBranch, err := pm.evictDeadBranch(node, uint64(threshold))
			if err != nil {
				return nil, err
			}
			evicted = append(evicted, evictedFromBranch...)
		}
	}
	pm.releasedBelowHeight = uint64(threshold)

	if len(evicted) > 0 {
		log.Debugf("Evicted %d blocks below height %d", len(evicted), threshold)
	}
	return evicted, nil
}

// evictDeadBranch evicts node if it is a childless non-genesis node below
// threshold, then walks up the branch doing the same for its parents
func (pm *pruningManager) evictDeadBranch(node *model.ChainNode, threshold uint64) ([]*externalapi.DomainHash, error) {
	var evicted []*externalapi.DomainHash
	for !node.IsGenesis() && node.Height() < threshold && pm.chainNodeStore.ChildCount(node.Hash()) == 0 {
		parentHash := node.ParentHash()
		err := pm.chainNodeStore.Delete(node.Hash())
		if err != nil {
			return nil, err
		}
		evicted = append(evicted, node.Hash())

		parent, ok := pm.chainNodeStore.Get(parentHash)
		if !ok {
			break
		}
		node = parent
	}
	return evicted, nil
}
