package coinbasemanager

import (
	"bytes"
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/forkledger/domain/consensus/utils/utxo"
)

func TestExpectedCoinbaseTransaction(t *testing.T) {
	manager := New(50)
	coinbaseData := &externalapi.DomainCoinbaseData{ScriptPublicKey: []byte{1, 2, 3}, ExtraData: []byte("miner")}

	coinbase := manager.ExpectedCoinbaseTransaction(7, coinbaseData)
	if !coinbase.IsCoinbase() {
		t.Fatalf("ExpectedCoinbaseTransaction returned a transaction with inputs")
	}
	if len(coinbase.Outputs) != 1 || coinbase.Outputs[0].Value != 50 ||
		!bytes.Equal(coinbase.Outputs[0].ScriptPublicKey, coinbaseData.ScriptPublicKey) {
		t.Fatalf("unexpected coinbase outputs: %v", coinbase.Outputs)
	}

	height, extraData, err := ExtractCoinbaseHeightAndExtraData(coinbase)
	if err != nil {
		t.Fatalf("ExtractCoinbaseHeightAndExtraData: %+v", err)
	}
	if height != 7 || !bytes.Equal(extraData, coinbaseData.ExtraData) {
		t.Fatalf("unexpected payload content: height %d, extra data %q", height, extraData)
	}

	other := manager.ExpectedCoinbaseTransaction(8, coinbaseData)
	if consensushashing.TransactionID(other).Equal(consensushashing.TransactionID(coinbase)) {
		t.Fatalf("coinbases of different heights share an ID")
	}
}

func TestAddCoinbaseToUTXOSet(t *testing.T) {
	manager := New(50)
	coinbase := manager.ExpectedCoinbaseTransaction(2,
		&externalapi.DomainCoinbaseData{ScriptPublicKey: []byte{1}})
	utxoSet := utxo.NewUTXOSet()
	manager.AddCoinbaseToUTXOSet(coinbase, utxoSet)

	outpoint := externalapi.NewDomainOutpoint(consensushashing.TransactionID(coinbase), 0)
	entry, ok := utxoSet.Get(outpoint)
	if !ok {
		t.Fatalf("coinbase output was not added")
	}
	if entry.Amount() != 50 || !entry.IsCoinbase() {
		t.Fatalf("unexpected coinbase entry: amount %d, isCoinbase %t", entry.Amount(), entry.IsCoinbase())
	}
}

func TestExtractCoinbaseHeightRejectsShortPayload(t *testing.T) {
	_, _, err := ExtractCoinbaseHeightAndExtraData(&externalapi.DomainTransaction{Payload: []byte{1, 2}})
	if err == nil {
		t.Fatalf("expected an error for a short payload")
	}
}
