package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/kaspanet/forkledger/domain/consensus"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/forkledger/domain/miningmanager"
	"github.com/kaspanet/forkledger/infrastructure/config"
	"github.com/kaspanet/forkledger/infrastructure/db/blockarchive"
	infrastructuredatabase "github.com/kaspanet/forkledger/infrastructure/db/database"
	"github.com/kaspanet/forkledger/infrastructure/metrics"
	"github.com/kaspanet/forkledger/util/panics"
	"github.com/pkg/errors"
)

// ErrArchiveDiverged is returned once an accepted block could not be
// archived. A later start would rebuild a different chain, so the node
// should stop producing blocks.
var ErrArchiveDiverged = errors.New("block archive diverged from the chain store")

// ComponentManager is a wrapper for all the forkledger services
type ComponentManager struct {
	cfg           *config.Config
	consensus     consensus.Consensus
	miningManager miningmanager.MiningManager
	archive       *blockarchive.Archive
	metrics       *metrics.Metrics

	cancelMetrics     context.CancelFunc
	started, shutdown int32
}

var spawn = panics.GoroutineWrapperFunc(log)

// NewComponentManager returns a new ComponentManager instance whose chain
// store was rebuilt from the blocks archived in db.
// Use Start() to begin all services within this ComponentManager
func NewComponentManager(cfg *config.Config, db infrastructuredatabase.Database) (*ComponentManager, error) {
	consensusConfig := consensus.Config{
		Params:         *cfg.ActiveNetParams,
		DisablePruning: cfg.NoPruning,
	}
	consensusInstance, err := consensus.NewFactory().NewConsensus(&consensusConfig)
	if err != nil {
		return nil, err
	}
	archive, err := blockarchive.New(db)
	if err != nil {
		return nil, err
	}
	metricsInstance, err := metrics.New()
	if err != nil {
		return nil, err
	}

	a := &ComponentManager{
		cfg:           cfg,
		consensus:     consensusInstance,
		miningManager: miningmanager.NewFactory().NewMiningManager(consensusInstance),
		archive:       archive,
		metrics:       metricsInstance,
	}
	err = a.replayArchive()
	if err != nil {
		return nil, err
	}
	return a, nil
}

// replayArchive inserts every archived block in acceptance order, which
// reproduces the chain store the blocks were accepted into
func (a *ComponentManager) replayArchive() error {
	start := time.Now()
	err := a.archive.ForEach(func(block *externalapi.DomainBlock) error {
		_, err := a.consensus.ValidateAndInsertBlock(block)
		if err != nil {
			if !errors.As(err, &ruleerrors.RuleError{}) {
				return err
			}
			// Blocks archived under other network params may no longer fit
			log.Warnf("Skipping archived block: %s", err)
			return nil
		}
		a.updateChainStateMetrics()
		return nil
	})
	if err != nil {
		return err
	}
	log.Infof("Replayed %d archived blocks in %s. Best block %s at height %d", a.archive.Count(),
		time.Since(start), a.consensus.BestBlockHash(), a.consensus.BestHeight())
	return nil
}

// Start launches all the forkledger services.
func (a *ComponentManager) Start() {
	// Already started?
	if atomic.AddInt32(&a.started, 1) != 1 {
		return
	}

	log.Trace("Starting forkledger")

	if a.cfg.MetricsListen == "" {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelMetrics = cancel
	spawn("ComponentManager.serveMetrics", func() {
		err := a.metrics.Serve(ctx, a.cfg.MetricsListen)
		if err != nil {
			log.Errorf("Metrics server stopped: %+v", err)
		}
	})
}

// Stop gracefully shuts down all the forkledger services.
func (a *ComponentManager) Stop() {
	// Make sure this only happens once.
	if atomic.AddInt32(&a.shutdown, 1) != 1 {
		log.Infof("Forkledger is already in the process of shutting down")
		return
	}

	log.Warnf("Forkledger shutting down")

	if a.cancelMetrics != nil {
		a.cancelMetrics()
	}
}

// ProcessBlock inserts block into the chain store. The transactions of an
// accepted block leave the pending pool and the block is archived. It
// returns false with no error when consensus rejected the block.
func (a *ComponentManager) ProcessBlock(block *externalapi.DomainBlock) (bool, error) {
	start := time.Now()
	result, err := a.consensus.ValidateAndInsertBlock(block)
	if err != nil {
		ruleError := ruleerrors.RuleError{}
		if !errors.As(err, &ruleError) {
			a.metrics.RecordBlock(false, "internal", time.Since(start))
			return false, err
		}
		log.Infof("Rejected block: %s", err)
		a.metrics.RecordBlock(false, ruleError.Message(), time.Since(start))
		return false, nil
	}
	a.metrics.RecordBlock(true, "", time.Since(start))
	if result.AlreadyRetained {
		return true, nil
	}

	a.miningManager.HandleNewBlock(block)
	err = a.archive.Store(block)
	if err != nil {
		log.Errorf("Block %s was accepted but could not be archived. The archive no longer "+
			"replays into the in-memory chain: %+v", result.BlockHash, err)
		return true, errors.Wrapf(ErrArchiveDiverged, "archiving block %s: %s", result.BlockHash, err)
	}
	if len(result.PrunedBlocks) > 0 {
		log.Debugf("Pruned %d blocks after accepting %s", len(result.PrunedBlocks), result.BlockHash)
	}
	a.updateChainStateMetrics()
	return true, nil
}

// GenerateBlock builds a block template paying coinbaseData and processes it
func (a *ComponentManager) GenerateBlock(coinbaseData *externalapi.DomainCoinbaseData) (
	*externalapi.DomainBlock, bool, error) {

	block, err := a.miningManager.GetBlockTemplate(coinbaseData)
	if err != nil {
		return nil, false, err
	}
	accepted, err := a.ProcessBlock(block)
	return block, accepted, err
}

// SubmitTransaction validates transaction against the best UTXO set and
// adds it to the pending pool
func (a *ComponentManager) SubmitTransaction(transaction *externalapi.DomainTransaction) error {
	err := a.miningManager.ValidateAndInsertTransaction(transaction)
	if err != nil {
		return err
	}
	a.updateChainStateMetrics()
	return nil
}

// Balance returns the total value of the outputs paying to scriptPublicKey
// in the UTXO set of the best block
func (a *ComponentManager) Balance(scriptPublicKey []byte) (uint64, error) {
	iterator := a.consensus.BestUTXOSet().Iterator()
	defer iterator.Close()

	balance := uint64(0)
	for ok := iterator.First(); ok; ok = iterator.Next() {
		_, entry, err := iterator.Get()
		if err != nil {
			return 0, err
		}
		if string(entry.ScriptPublicKey()) == string(scriptPublicKey) {
			balance += entry.Amount()
		}
	}
	return balance, nil
}

func (a *ComponentManager) updateChainStateMetrics() {
	a.metrics.SetChainState(a.consensus.BestHeight(), a.consensus.RetainedBlockCount(),
		a.consensus.TransactionPool().Count())
}

// Consensus returns the chain store
func (a *ComponentManager) Consensus() consensus.Consensus {
	return a.consensus
}

// MiningManager returns the block producer
func (a *ComponentManager) MiningManager() miningmanager.MiningManager {
	return a.miningManager
}

// Metrics returns the prometheus metrics of the chain store
func (a *ComponentManager) Metrics() *metrics.Metrics {
	return a.metrics
}
