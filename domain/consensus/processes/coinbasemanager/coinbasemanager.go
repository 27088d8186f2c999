package coinbasemanager

import (
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/forkledger/domain/consensus/utils/constants"
	"github.com/kaspanet/forkledger/domain/consensus/utils/utxo"
)

type coinbaseManager struct {
	coinbaseReward uint64
}

// New instantiates a new CoinbaseManager
func New(coinbaseReward uint64) model.CoinbaseManager {
	return &coinbaseManager{
		coinbaseReward: coinbaseReward,
	}
}

// ExpectedCoinbaseTransaction returns the coinbase a block at height paying
// coinbaseData's script is expected to carry
func (c *coinbaseManager) ExpectedCoinbaseTransaction(height uint64,
	coinbaseData *externalapi.DomainCoinbaseData) *externalapi.DomainTransaction {

	scriptPublicKey := make([]byte, len(coinbaseData.ScriptPublicKey))
	copy(scriptPublicKey, coinbaseData.ScriptPublicKey)

	return &externalapi.DomainTransaction{
		Version: constants.TransactionVersion,
		Inputs:  []*externalapi.DomainTransactionInput{},
		Outputs: []*externalapi.DomainTransactionOutput{{
			Value:           c.coinbaseReward,
			ScriptPublicKey: scriptPublicKey,
		}},
		Payload: serializeCoinbasePayload(height, coinbaseData),
	}
}

// AddCoinbaseToUTXOSet adds every output of coinbase to utxoSet. Coinbase
// outputs are never validated.
func (c *coinbaseManager) AddCoinbaseToUTXOSet(coinbase *externalapi.DomainTransaction, utxoSet externalapi.UTXOSet) {
	coinbaseID := consensushashing.TransactionID(coinbase)
	for i, output := range coinbase.Outputs {
		outpoint := externalapi.NewDomainOutpoint(coinbaseID, uint32(i))
		utxoSet.Add(outpoint, utxo.NewUTXOEntry(output.Value, output.ScriptPublicKey, true))
	}
}
