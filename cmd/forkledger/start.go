package main

import (
	"time"

	"github.com/kaspanet/forkledger/app"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/infrastructure/db/database/ldb"
	"github.com/kaspanet/forkledger/infrastructure/logger"
	"github.com/kaspanet/forkledger/infrastructure/os/execenv"
	"github.com/kaspanet/forkledger/infrastructure/os/signal"
	"github.com/kaspanet/forkledger/util"
	"github.com/pkg/errors"
)

func start(conf *startConfig) error {
	cfg := conf.resolved

	var coinbaseData *externalapi.DomainCoinbaseData
	if conf.Generate {
		if conf.MiningAddr == "" {
			return errors.New("--generate requires --miningaddr")
		}
		miningAddress, err := util.DecodeAddress(conf.MiningAddr, cfg.NetParams().Bech32Prefix)
		if err != nil {
			return err
		}
		coinbaseData = &externalapi.DomainCoinbaseData{ScriptPublicKey: miningAddress.ScriptPublicKey()}
	}
	blockInterval := conf.BlockInterval
	if blockInterval <= 0 {
		blockInterval = cfg.NetParams().TargetTimePerBlock
	}

	logger.InitLog(cfg.LogFile, cfg.ErrLogFile)
	defer logger.BackendLog.Close()
	execenv.Initialize()
	interrupt := signal.InterruptListener()

	db, err := ldb.NewLevelDB(cfg.DataDir, cfg.ArchiveCacheMiB)
	if err != nil {
		return err
	}
	defer func() {
		err := db.Close()
		if err != nil {
			log.Errorf("Error closing the block archive: %+v", err)
		}
	}()

	componentManager, err := app.NewComponentManager(cfg, db)
	if err != nil {
		return err
	}
	componentManager.Start()
	defer componentManager.Stop()
	log.Infof("Forkledger started on %s", cfg.NetParams().Name)

	if coinbaseData != nil {
		generatorDone := make(chan struct{})
		spawn("generateBlocks", func() {
			defer close(generatorDone)
			generateBlocks(componentManager, coinbaseData, blockInterval, interrupt)
		})
		defer func() { <-generatorDone }()
	}

	<-interrupt
	return nil
}

func generateBlocks(componentManager *app.ComponentManager, coinbaseData *externalapi.DomainCoinbaseData,
	blockInterval time.Duration, interrupt <-chan struct{}) {

	ticker := time.NewTicker(blockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			return
		case <-ticker.C:
		}

		block, accepted, err := componentManager.GenerateBlock(coinbaseData)
		if errors.Is(err, app.ErrArchiveDiverged) {
			log.Criticalf("Stopping block generation: %s", err)
			signal.ShutdownRequestChannel <- struct{}{}
			return
		}
		if err != nil {
			log.Errorf("Error generating a block: %+v", err)
			continue
		}
		if !accepted {
			// The best block changed while the template was built
			continue
		}
		log.Infof("Generated block with %d transactions at height %d",
			len(block.Transactions), componentManager.Consensus().BestHeight())
	}
}
