package main

import (
	"fmt"

	"github.com/kaspanet/forkledger/app"
	"github.com/kaspanet/forkledger/domain/consensus/utils/constants"
	"github.com/kaspanet/forkledger/infrastructure/db/database/ldb"
	"github.com/kaspanet/forkledger/util"
)

func status(conf *statusConfig) error {
	cfg := conf.resolved

	var address *util.AddressPublicKey
	if conf.Address != "" {
		var err error
		address, err = util.DecodeAddress(conf.Address, cfg.NetParams().Bech32Prefix)
		if err != nil {
			return err
		}
	}

	db, err := ldb.NewLevelDB(cfg.DataDir, cfg.ArchiveCacheMiB)
	if err != nil {
		return err
	}
	defer db.Close()

	componentManager, err := app.NewComponentManager(cfg, db)
	if err != nil {
		return err
	}
	chainStore := componentManager.Consensus()
	fmt.Printf("Network:         %s\n", cfg.NetParams().Name)
	fmt.Printf("Best block:      %s\n", chainStore.BestBlockHash())
	fmt.Printf("Best height:     %d\n", chainStore.BestHeight())
	fmt.Printf("Retained blocks: %d\n", chainStore.RetainedBlockCount())
	fmt.Printf("UTXO commitment: %s\n", chainStore.BestUTXOSet().Commitment())

	if address != nil {
		balance, err := componentManager.Balance(address.ScriptPublicKey())
		if err != nil {
			return err
		}
		fmt.Printf("Balance of %s: %d.%08d\n", address, balance/constants.SompiPerForkCoin,
			balance%constants.SompiPerForkCoin)
	}
	return nil
}
