package consensushashing

import (
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

func testTransaction() *externalapi.DomainTransaction {
	return &externalapi.DomainTransaction{
		Version: 0,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{
				TransactionID: *externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{1}),
				Index:         3,
			},
			SignatureScript: []byte{1, 2, 3},
		}},
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 25, ScriptPublicKey: []byte{4, 5}}},
	}
}

func TestTransactionIDIgnoresSignatureScripts(t *testing.T) {
	tx := testTransaction()
	id := TransactionID(tx)

	signed := tx.Clone()
	signed.Inputs[0].SignatureScript = []byte{9, 9, 9, 9}
	if !TransactionID(signed).Equal(id) {
		t.Fatalf("TransactionID changed when only the signature script changed")
	}

	modified := tx.Clone()
	modified.Outputs[0].Value++
	if TransactionID(modified).Equal(id) {
		t.Fatalf("TransactionID did not change when an output value changed")
	}
}

func TestCalculateSignatureHash(t *testing.T) {
	tx := testTransaction()
	tx.Inputs = append(tx.Inputs, tx.Inputs[0].Clone())
	tx.Inputs[1].PreviousOutpoint.Index = 4

	first, err := CalculateSignatureHash(tx, 0)
	if err != nil {
		t.Fatalf("CalculateSignatureHash: %+v", err)
	}
	second, err := CalculateSignatureHash(tx, 1)
	if err != nil {
		t.Fatalf("CalculateSignatureHash: %+v", err)
	}
	if first.Equal(second) {
		t.Fatalf("signature hashes of different inputs are expected to differ")
	}

	_, err = CalculateSignatureHash(tx, 2)
	if err == nil {
		t.Fatalf("CalculateSignatureHash: expected an error for an out of range input index")
	}
}

func TestBlockHash(t *testing.T) {
	coinbase := &externalapi.DomainTransaction{
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 25, ScriptPublicKey: []byte{1}}},
	}
	block := &externalapi.DomainBlock{
		Header:       &externalapi.DomainBlockHeader{ParentHash: externalapi.NewZeroHash()},
		Transactions: []*externalapi.DomainTransaction{testTransaction()},
		Coinbase:     coinbase,
	}
	hash := BlockHash(block)
	if !BlockHash(block.Clone()).Equal(hash) {
		t.Fatalf("BlockHash is not deterministic")
	}

	resigned := block.Clone()
	resigned.Transactions[0].Inputs[0].SignatureScript = []byte{7}
	if BlockHash(resigned).Equal(hash) {
		t.Fatalf("BlockHash is expected to commit to signature scripts")
	}

	genesisLike := block.Clone()
	genesisLike.Header.ParentHash = nil
	if BlockHash(genesisLike).Equal(hash) {
		t.Fatalf("BlockHash is expected to distinguish a nil parent from the zero hash")
	}
}
