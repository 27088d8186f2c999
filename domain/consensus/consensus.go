package consensus

import (
	"sync"

	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/forkledger/domain/dagconfig"
	"github.com/pkg/errors"
)

// Consensus maintains the current core state of the node: every retained
// block, the UTXO set after each of them, and the best block
type Consensus interface {
	ValidateAndInsertBlock(block *externalapi.DomainBlock) (*externalapi.BlockInsertionResult, error)
	AddBlock(block *externalapi.DomainBlock) bool
	AddTransaction(transaction *externalapi.DomainTransaction)
	BuildBlock(coinbaseData *externalapi.DomainCoinbaseData, transactions []*externalapi.DomainTransaction) (*externalapi.DomainBlock, error)
	ValidateTransactions(utxoSet externalapi.UTXOSet, transactions []*externalapi.DomainTransaction) (
		[]*externalapi.DomainTransaction, externalapi.UTXOSet)

	BestBlock() *externalapi.DomainBlock
	BestBlockHash() *externalapi.DomainHash
	BestHeight() uint64
	BestUTXOSet() externalapi.UTXOSet
	TransactionPool() model.TransactionPool

	GetBlockInfo(blockHash *externalapi.DomainHash) *externalapi.BlockInfo
	GetChainNode(blockHash *externalapi.DomainHash) (*model.ChainNode, bool)
	RetainedBlockCount() int
	Params() *dagconfig.Params
}

type consensus struct {
	lock   *sync.RWMutex
	params *dagconfig.Params

	blockProcessor       model.BlockProcessor
	blockBuilder         model.BlockBuilder
	transactionValidator model.TransactionValidator
	transactionPool      model.TransactionPool

	chainNodeStore model.ChainNodeStore
}

// ValidateAndInsertBlock validates the given block and, if valid, inserts
// it. A rejection is returned as an error wrapping a ruleerrors.RuleError.
func (s *consensus) ValidateAndInsertBlock(block *externalapi.DomainBlock) (*externalapi.BlockInsertionResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.blockProcessor.ValidateAndInsertBlock(block)
}

// AddBlock inserts block and reports whether it was accepted
func (s *consensus) AddBlock(block *externalapi.DomainBlock) bool {
	_, err := s.ValidateAndInsertBlock(block)
	if err == nil {
		return true
	}
	if errors.As(err, &ruleerrors.RuleError{}) {
		log.Debugf("Rejected block: %s", err)
	} else {
		log.Errorf("Error inserting block: %+v", err)
	}
	return false
}

// AddTransaction adds transaction to the pending pool without validating it
func (s *consensus) AddTransaction(transaction *externalapi.DomainTransaction) {
	s.transactionPool.Add(transaction)
}

// BuildBlock builds a block over the best block. The transactions are not
// validated, so the block may be rejected on insertion.
func (s *consensus) BuildBlock(coinbaseData *externalapi.DomainCoinbaseData,
	transactions []*externalapi.DomainTransaction) (*externalapi.DomainBlock, error) {

	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.blockBuilder.BuildBlock(coinbaseData, transactions)
}

// ValidateTransactions runs the validation oracle. It does not touch any
// consensus state.
func (s *consensus) ValidateTransactions(utxoSet externalapi.UTXOSet,
	transactions []*externalapi.DomainTransaction) ([]*externalapi.DomainTransaction, externalapi.UTXOSet) {

	return s.transactionValidator.ValidateTransactions(utxoSet, transactions)
}

// BestBlock returns a copy of the best block
func (s *consensus) BestBlock() *externalapi.DomainBlock {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.blockProcessor.BestNode().Block().Clone()
}

func (s *consensus) BestBlockHash() *externalapi.DomainHash {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.blockProcessor.BestNode().Hash().Clone()
}

func (s *consensus) BestHeight() uint64 {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.blockProcessor.BestNode().Height()
}

// BestUTXOSet returns a copy of the UTXO set after the best block. Mutating
// it never affects consensus.
func (s *consensus) BestUTXOSet() externalapi.UTXOSet {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.blockProcessor.BestNode().UTXOSet()
}

func (s *consensus) TransactionPool() model.TransactionPool {
	return s.transactionPool
}

func (s *consensus) GetBlockInfo(blockHash *externalapi.DomainHash) *externalapi.BlockInfo {
	s.lock.RLock()
	defer s.lock.RUnlock()

	node, ok := s.chainNodeStore.Get(blockHash)
	if !ok {
		return &externalapi.BlockInfo{Exists: false}
	}
	return &externalapi.BlockInfo{
		Exists:     true,
		Height:     node.Height(),
		IsBest:     node.Hash().Equal(s.blockProcessor.BestNode().Hash()),
		HasUTXOSet: node.HasUTXOSet(),
	}
}

// GetChainNode returns the retained node of blockHash. Nodes are immutable,
// so the result stays valid even if the node is later evicted.
func (s *consensus) GetChainNode(blockHash *externalapi.DomainHash) (*model.ChainNode, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.chainNodeStore.Get(blockHash)
}

// RetainedBlockCount returns how many blocks are currently in memory
func (s *consensus) RetainedBlockCount() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.chainNodeStore.Count()
}

func (s *consensus) Params() *dagconfig.Params {
	return s.params
}
