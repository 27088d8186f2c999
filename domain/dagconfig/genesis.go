// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/constants"
)

// genesisCoinbasePayload returns the payload of a genesis coinbase: height 1
// followed by the network name, which keeps the genesis hashes of different
// networks apart
func genesisCoinbasePayload(networkName string) []byte {
	payload := []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Height
	}
	return append(payload, networkName...)
}

// newGenesisBlock returns a genesis block that pays nothing to anyone, so
// the genesis UTXO set is empty on every network
func newGenesisBlock(networkName string, timeInMilliseconds int64) *externalapi.DomainBlock {
	return &externalapi.DomainBlock{
		Header: &externalapi.DomainBlockHeader{
			Version:            constants.BlockVersion,
			ParentHash:         nil,
			TimeInMilliseconds: timeInMilliseconds,
			Nonce:              0,
		},
		Transactions: []*externalapi.DomainTransaction{},
		Coinbase: &externalapi.DomainTransaction{
			Version: constants.TransactionVersion,
			Inputs:  []*externalapi.DomainTransactionInput{},
			Outputs: []*externalapi.DomainTransactionOutput{},
			Payload: genesisCoinbasePayload(networkName),
		},
	}
}

// genesisBlock defines the genesis block of the chain which serves as the
// public transaction ledger for the main network.
var genesisBlock = newGenesisBlock("forkledger-mainnet", 0x17c5f62fe80)

var testnetGenesisBlock = newGenesisBlock("forkledger-testnet", 0x17c5f62fe80)

var simnetGenesisBlock = newGenesisBlock("forkledger-simnet", 0x17c5f62fe80)

var devnetGenesisBlock = newGenesisBlock("forkledger-devnet", 0x17c5f62fe80)
