// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"time"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/forkledger/domain/consensus/utils/constants"
)

// Params defines a network by its parameters. These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Bech32Prefix is the human-readable part of addresses on this network
	Bech32Prefix string

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *externalapi.DomainBlock

	// GenesisHash is the starting block hash.
	GenesisHash *externalapi.DomainHash

	// CutoffAge is how far below the best block a block may be and still
	// get a child accepted. Blocks further behind can never become part of
	// the best chain.
	CutoffAge uint64

	// CoinbaseReward is the amount paid by every coinbase
	CoinbaseReward uint64

	// TargetTimePerBlock is the interval the block generator waits between
	// blocks when no other interval is configured
	TargetTimePerBlock time.Duration
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:               "forkledger-mainnet",
	Bech32Prefix:       "fkl",
	GenesisBlock:       genesisBlock,
	GenesisHash:        consensushashing.BlockHash(genesisBlock),
	CutoffAge:          constants.DefaultCutoffAge,
	CoinbaseReward:     constants.DefaultCoinbaseReward,
	TargetTimePerBlock: time.Second * 10,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:               "forkledger-testnet",
	Bech32Prefix:       "fkltest",
	GenesisBlock:       testnetGenesisBlock,
	GenesisHash:        consensushashing.BlockHash(testnetGenesisBlock),
	CutoffAge:          constants.DefaultCutoffAge,
	CoinbaseReward:     constants.DefaultCoinbaseReward,
	TargetTimePerBlock: time.Second * 10,
}

// SimnetParams defines the network parameters for the simulation test network.
// This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing and full integration tests between different applications.
var SimnetParams = Params{
	Name:               "forkledger-simnet",
	Bech32Prefix:       "fklsim",
	GenesisBlock:       simnetGenesisBlock,
	GenesisHash:        consensushashing.BlockHash(simnetGenesisBlock),
	CutoffAge:          constants.DefaultCutoffAge,
	CoinbaseReward:     constants.DefaultCoinbaseReward,
	TargetTimePerBlock: time.Millisecond,
}

// DevnetParams defines the network parameters for the development network.
var DevnetParams = Params{
	Name:               "forkledger-devnet",
	Bech32Prefix:       "fkldev",
	GenesisBlock:       devnetGenesisBlock,
	GenesisHash:        consensushashing.BlockHash(devnetGenesisBlock),
	CutoffAge:          constants.DefaultCutoffAge,
	CoinbaseReward:     constants.DefaultCoinbaseReward,
	TargetTimePerBlock: time.Second,
}
