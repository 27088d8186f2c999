package blockprocessor

import (
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/processes/blockprocessor/blocklogger"
	"github.com/kaspanet/forkledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/forkledger/domain/consensus/utils/utxo"
	"github.com/kaspanet/forkledger/infrastructure/logger"
	"github.com/pkg/errors"
)

// InsertGenesisBlock makes genesis the root and the best block. Its UTXO
// set holds exactly the outputs of its coinbase.
func (bp *blockProcessor) InsertGenesisBlock(genesis *externalapi.DomainBlock) (*externalapi.DomainHash, error) {
	if bp.bestHash != nil {
		return nil, errors.New("genesis was already inserted")
	}
	err := checkBlockStructure(genesis)
	if err != nil {
		return nil, err
	}
	if genesis.Header.ParentHash != nil {
		return nil, errors.Errorf("genesis must not have a parent, but it points to %s", genesis.Header.ParentHash)
	}
	if len(genesis.Transactions) != 0 {
		return nil, errors.Errorf("genesis must not carry transactions other than its coinbase, "+
			"but it has %d", len(genesis.Transactions))
	}

	genesisHash := consensushashing.BlockHash(genesis)
	utxoSet := utxo.NewUTXOSet()
	bp.coinbaseManager.AddCoinbaseToUTXOSet(genesis.Coinbase, utxoSet)

	node := model.NewChainNode(genesis.Clone(), genesisHash, model.GenesisHeight, utxoSet)
	err = bp.chainNodeStore.Insert(node)
	if err != nil {
		return nil, err
	}
	bp.bestHash = genesisHash
	log.Infof("Initialized the chain with genesis %s", genesisHash)
	return genesisHash, nil
}

// ValidateAndInsertBlock validates block against its parent's UTXO set and
// inserts it. Nothing is changed unless every check passed.
func (bp *blockProcessor) ValidateAndInsertBlock(block *externalapi.DomainBlock) (*externalapi.BlockInsertionResult, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateAndInsertBlock")
	defer onEnd()

	err := checkBlockStructure(block)
	if err != nil {
		return nil, err
	}
	blockHash := consensushashing.BlockHash(block)

	parentHash := block.Header.ParentHash
	if parentHash == nil {
		return nil, errors.Wrapf(ruleerrors.ErrNoParents, "block %s has no parent", blockHash)
	}
	parent, ok := bp.chainNodeStore.Get(parentHash)
	if !ok {
		return nil, ruleerrors.NewErrMissingParents([]*externalapi.DomainHash{parentHash})
	}
	if !parent.HasUTXOSet() {
		return nil, errors.Wrapf(ruleerrors.ErrTooFarBehind, "parent %s of block %s at height %d "+
			"is out of the retention window", parentHash, blockHash, parent.Height())
	}

	acceptedTransactions, utxoSet := bp.transactionValidator.ValidateTransactions(parent.UTXOSet(), block.Transactions)
	if len(acceptedTransactions) < len(block.Transactions) {
		return nil, ruleerrors.NewErrInvalidTransactionsInNewBlock(
			rejectedTransactionIDs(block.Transactions, acceptedTransactions))
	}

	bestNode := bp.BestNode()
	if !bp.pruningManager.IsExtendable(parent.Height(), bestNode.Height()) {
		return nil, errors.Wrapf(ruleerrors.ErrTooFarBehind, "block %s at height %d is too far below "+
			"the best block at height %d", blockHash, parent.Height()+1, bestNode.Height())
	}

	// Accepting a retained block again is a no-op. Its node already holds the
	// same height and UTXO set, and an equal height never replaces the best block.
	if existing, ok := bp.chainNodeStore.Get(blockHash); ok {
		log.Debugf("Block %s is already retained at height %d", blockHash, existing.Height())
		return &externalapi.BlockInsertionResult{
			BlockHash:       blockHash,
			Height:          existing.Height(),
			AlreadyRetained: true,
		}, nil
	}

	bp.coinbaseManager.AddCoinbaseToUTXOSet(block.Coinbase, utxoSet)
	node := model.NewChainNode(block.Clone(), blockHash, parent.Height()+1, utxoSet)
	err = bp.chainNodeStore.Insert(node)
	if err != nil {
		return nil, err
	}

	result := &externalapi.BlockInsertionResult{
		BlockHash: blockHash,
		Height:    node.Height(),
	}
	if node.Height() > bestNode.Height() {
		bp.bestHash = blockHash
		result.BecameBest = true
		log.Debugf("Block %s at height %d is the new best block", blockHash, node.Height())

		result.PrunedBlocks, err = bp.pruningManager.Prune(node.Height())
		if err != nil {
			return nil, err
		}
	}

	blocklogger.LogBlock(block, node.Height())
	return result, nil
}

func checkBlockStructure(block *externalapi.DomainBlock) error {
	if block == nil {
		return errors.Wrapf(ruleerrors.ErrBadBlock, "block is nil")
	}
	if block.Header == nil {
		return errors.Wrapf(ruleerrors.ErrBadBlock, "block has no header")
	}
	if block.Coinbase == nil {
		return errors.Wrapf(ruleerrors.ErrBadBlock, "block has no coinbase")
	}
	for i, transaction := range block.Transactions {
		if transaction == nil {
			return errors.Wrapf(ruleerrors.ErrBadBlock, "transaction %d is nil", i)
		}
	}
	return nil
}

// rejectedTransactionIDs returns the IDs of all submitted transactions that
// are not among the accepted ones, counting repeated transactions separately
func rejectedTransactionIDs(submitted []*externalapi.DomainTransaction,
	accepted []*externalapi.DomainTransaction) []*externalapi.DomainTransactionID {

	acceptedCount := make(map[externalapi.DomainTransactionID]int, len(accepted))
	for _, transaction := range accepted {
		acceptedCount[*consensushashing.TransactionID(transaction)]++
	}

	var rejected []*externalapi.DomainTransactionID
	for _, transaction := range submitted {
		transactionID := consensushashing.TransactionID(transaction)
		if acceptedCount[*transactionID] > 0 {
			acceptedCount[*transactionID]--
			continue
		}
		rejected = append(rejected, transactionID)
	}
	return rejected
}
