package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// ChainNode is one accepted block together with its height and the UTXO set
// that results immediately after applying it.
//
// A ChainNode is immutable. The parent is referenced by hash only; resolving
// it goes through the ChainNodeStore, which is the sole owner of all nodes.
type ChainNode struct {
	block      *externalapi.DomainBlock
	hash       *externalapi.DomainHash
	parentHash *externalapi.DomainHash
	height     uint64

	// utxoSet is nil once the retention policy released it
	utxoSet externalapi.UTXOSet
}

// GenesisHeight is the height of the genesis node
const GenesisHeight = 1

// NewChainNode creates a node for block. The node keeps its own copy of
// utxoSet, so later mutations of the passed set are never observed.
func NewChainNode(block *externalapi.DomainBlock, hash *externalapi.DomainHash, height uint64,
	utxoSet externalapi.UTXOSet) *ChainNode {

	return &ChainNode{
		block:      block,
		hash:       hash,
		parentHash: block.Header.ParentHash,
		height:     height,
		utxoSet:    utxoSet.Clone(),
	}
}

// Block returns the node's block. It must be treated as immutable.
func (node *ChainNode) Block() *externalapi.DomainBlock {
	return node.block
}

// Hash returns the hash of the node's block
func (node *ChainNode) Hash() *externalapi.DomainHash {
	return node.hash
}

// ParentHash returns the hash of the parent node, or nil for genesis
func (node *ChainNode) ParentHash() *externalapi.DomainHash {
	return node.parentHash
}

// Height returns the node's height. Genesis is at GenesisHeight.
func (node *ChainNode) Height() uint64 {
	return node.height
}

// IsGenesis returns whether this is the parentless genesis node
func (node *ChainNode) IsGenesis() bool {
	return node.parentHash == nil
}

// HasUTXOSet returns whether the node still holds its UTXO set
func (node *ChainNode) HasUTXOSet() bool {
	return node.utxoSet != nil
}

// UTXOSet returns a copy of the UTXO set after this node's block, or nil if
// it was released. Mutating the copy never affects the node.
func (node *ChainNode) UTXOSet() externalapi.UTXOSet {
	if node.utxoSet == nil {
		return nil
	}
	return node.utxoSet.Clone()
}

// UTXOCommitment returns the commitment of the node's UTXO set, or nil if
// it was released
func (node *ChainNode) UTXOCommitment() *externalapi.DomainHash {
	if node.utxoSet == nil {
		return nil
	}
	return node.utxoSet.Commitment()
}

// WithoutUTXOSet returns a copy of the node that no longer holds a UTXO set
func (node *ChainNode) WithoutUTXOSet() *ChainNode {
	return &ChainNode{
		block:      node.block,
		hash:       node.hash,
		parentHash: node.parentHash,
		height:     node.height,
	}
}

func (node *ChainNode) String() string {
	return node.hash.String()
}
