package consensus

import (
	"sync"

	"github.com/kaspanet/forkledger/domain/consensus/datastructures/chainnodestore"
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/processes/blockbuilder"
	"github.com/kaspanet/forkledger/domain/consensus/processes/blockprocessor"
	"github.com/kaspanet/forkledger/domain/consensus/processes/coinbasemanager"
	"github.com/kaspanet/forkledger/domain/consensus/processes/pruningmanager"
	"github.com/kaspanet/forkledger/domain/consensus/processes/transactionvalidator"
	"github.com/kaspanet/forkledger/domain/miningmanager/mempool"
	"github.com/pkg/errors"
)

// Factory instantiates new Consensuses
type Factory interface {
	NewConsensus(config *Config) (Consensus, error)
	NewTestConsensus(config *Config, testName string) (tc TestConsensus, teardown func(), err error)

	// SetTransactionValidator replaces the default validation oracle of
	// every Consensus created afterwards
	SetTransactionValidator(transactionValidator model.TransactionValidator)
}

type factory struct {
	transactionValidator model.TransactionValidator
}

// NewFactory creates a new Consensus factory
func NewFactory() Factory {
	return &factory{}
}

// NewConsensus instantiates a new Consensus bootstrapped with the genesis
// block of config
func (f *factory) NewConsensus(config *Config) (Consensus, error) {
	c, _, err := f.newConsensus(config)
	return c, err
}

func (f *factory) newConsensus(config *Config) (*consensus, model.BlockBuilder, error) {
	if config.GenesisBlock == nil {
		return nil, nil, errors.Errorf("network %s has no genesis block", config.Name)
	}

	// Data Structures
	chainNodeStore := chainnodestore.New()

	// Processes
	transactionValidator := f.transactionValidator
	if transactionValidator == nil {
		transactionValidator = transactionvalidator.New()
	}
	coinbaseManager := coinbasemanager.New(config.CoinbaseReward)
	pruningManager := pruningmanager.New(chainNodeStore, config.CutoffAge, config.DisablePruning)
	blockProcessor := blockprocessor.New(
		transactionValidator,
		coinbaseManager,
		pruningManager,
		chainNodeStore)
	blockBuilder := blockbuilder.New(
		coinbaseManager,
		blockProcessor,
		chainNodeStore)

	genesisHash, err := blockProcessor.InsertGenesisBlock(config.GenesisBlock)
	if err != nil {
		return nil, nil, err
	}
	if config.GenesisHash != nil && !genesisHash.Equal(config.GenesisHash) {
		return nil, nil, errors.Errorf("genesis block of %s hashes to %s but %s is configured",
			config.Name, genesisHash, config.GenesisHash)
	}

	params := config.Params
	c := &consensus{
		lock:   &sync.RWMutex{},
		params: &params,

		blockProcessor:       blockProcessor,
		blockBuilder:         blockBuilder,
		transactionValidator: transactionValidator,
		transactionPool:      mempool.New(),

		chainNodeStore: chainNodeStore,
	}
	return c, blockBuilder, nil
}

func (f *factory) NewTestConsensus(config *Config, testName string) (
	tc TestConsensus, teardown func(), err error) {

	c, blockBuilder, err := f.newConsensus(config)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("Created test consensus %s on %s", testName, config.Name)

	testConsensus := &testConsensus{
		consensus:        c,
		testBlockBuilder: blockbuilder.NewTestBlockBuilder(blockBuilder),
	}
	teardown = func() {
		log.Debugf("Tearing down test consensus %s", testName)
	}
	return testConsensus, teardown, nil
}

func (f *factory) SetTransactionValidator(transactionValidator model.TransactionValidator) {
	f.transactionValidator = transactionValidator
}
