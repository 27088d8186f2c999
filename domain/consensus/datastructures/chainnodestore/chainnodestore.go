package chainnodestore

import (
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// chainNodeStore is the identity map of all retained chain nodes. It keeps a
// children count per node and a height index so that the pruning manager
// never has to scan every node.
//
// chainNodeStore is not safe for concurrent use. Consensus serializes all
// access to it.
type chainNodeStore struct {
	nodes         map[externalapi.DomainHash]*model.ChainNode
	childrenCount map[externalapi.DomainHash]int
	heightIndex   map[uint64]map[externalapi.DomainHash]struct{}
}

// New instantiates a new ChainNodeStore
func New() model.ChainNodeStore {
	return &chainNodeStore{
		nodes:         make(map[externalapi.DomainHash]*model.ChainNode),
		childrenCount: make(map[externalapi.DomainHash]int),
		heightIndex:   make(map[uint64]map[externalapi.DomainHash]struct{}),
	}
}

// Insert adds a node whose parent, if it has one, is already retained
func (cns *chainNodeStore) Insert(node *model.ChainNode) error {
	if _, exists := cns.nodes[*node.Hash()]; exists {
		return errors.Errorf("node %s is already in the store", node)
	}
	if !node.IsGenesis() {
		if _, parentExists := cns.nodes[*node.ParentHash()]; !parentExists {
			return errors.Errorf("parent %s of node %s is not in the store", node.ParentHash(), node)
		}
		cns.childrenCount[*node.ParentHash()]++
	}

	cns.nodes[*node.Hash()] = node
	hashesAtHeight, ok := cns.heightIndex[node.Height()]
	if !ok {
		hashesAtHeight = make(map[externalapi.DomainHash]struct{})
		cns.heightIndex[node.Height()] = hashesAtHeight
	}
	hashesAtHeight[*node.Hash()] = struct{}{}
	return nil
}

func (cns *chainNodeStore) Get(blockHash *externalapi.DomainHash) (*model.ChainNode, bool) {
	node, ok := cns.nodes[*blockHash]
	return node, ok
}

func (cns *chainNodeStore) Has(blockHash *externalapi.DomainHash) bool {
	_, ok := cns.nodes[*blockHash]
	return ok
}

// Replace swaps a retained node for another node with the same hash, such as
// a copy whose UTXO set was released
func (cns *chainNodeStore) Replace(node *model.ChainNode) error {
	existing, ok := cns.nodes[*node.Hash()]
	if !ok {
		return errors.Errorf("node %s is not in the store", node)
	}
	if existing.Height() != node.Height() || !existing.ParentHash().Equal(node.ParentHash()) {
		return errors.Errorf("replacement of node %s does not keep its place in the chain", node)
	}
	cns.nodes[*node.Hash()] = node
	return nil
}

// Delete removes a node that has no retained children
func (cns *chainNodeStore) Delete(blockHash *externalapi.DomainHash) error {
	node, ok := cns.nodes[*blockHash]
	if !ok {
		return errors.Errorf("node %s is not in the store", blockHash)
	}
	if cns.childrenCount[*blockHash] > 0 {
		return errors.Errorf("node %s cannot be deleted while it has %d children",
			blockHash, cns.childrenCount[*blockHash])
	}

	delete(cns.nodes, *blockHash)
	delete(cns.childrenCount, *blockHash)
	if !node.IsGenesis() {
		cns.childrenCount[*node.ParentHash()]--
		if cns.childrenCount[*node.ParentHash()] == 0 {
			delete(cns.childrenCount, *node.ParentHash())
		}
	}

	hashesAtHeight := cns.heightIndex[node.Height()]
	delete(hashesAtHeight, *blockHash)
	if len(hashesAtHeight) == 0 {
		delete(cns.heightIndex, node.Height())
	}
	return nil
}

func (cns *chainNodeStore) ChildCount(blockHash *externalapi.DomainHash) int {
	return cns.childrenCount[*blockHash]
}

// HashesAtHeight returns the hashes of all retained nodes at height, in no
// particular order
func (cns *chainNodeStore) HashesAtHeight(height uint64) []*externalapi.DomainHash {
	hashesAtHeight := cns.heightIndex[height]
	hashes := make([]*externalapi.DomainHash, 0, len(hashesAtHeight))
	for hash := range hashesAtHeight {
		hash := hash
		hashes = append(hashes, &hash)
	}
	return hashes
}

func (cns *chainNodeStore) Count() int {
	return len(cns.nodes)
}
