package txsigning

import (
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

func testKeyPairAndScript(t *testing.T, keyByte byte) []byte {
	privateKey := make([]byte, PrivateKeySize)
	privateKey[PrivateKeySize-1] = keyByte
	keyPair, err := KeyPairFromPrivateKey(privateKey)
	if err != nil {
		t.Fatalf("KeyPairFromPrivateKey: %+v", err)
	}
	script, err := ScriptPublicKey(keyPair)
	if err != nil {
		t.Fatalf("ScriptPublicKey: %+v", err)
	}
	return script
}

func TestSignAndVerify(t *testing.T) {
	privateKey := make([]byte, PrivateKeySize)
	privateKey[PrivateKeySize-1] = 7
	keyPair, err := KeyPairFromPrivateKey(privateKey)
	if err != nil {
		t.Fatalf("KeyPairFromPrivateKey: %+v", err)
	}
	owner, err := ScriptPublicKey(keyPair)
	if err != nil {
		t.Fatalf("ScriptPublicKey: %+v", err)
	}

	tx := &externalapi.DomainTransaction{
		Inputs: []*externalapi.DomainTransactionInput{
			{PreviousOutpoint: externalapi.DomainOutpoint{Index: 0}},
			{PreviousOutpoint: externalapi.DomainOutpoint{Index: 1}},
		},
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 5, ScriptPublicKey: owner}},
	}
	err = SignAllInputs(tx, keyPair)
	if err != nil {
		t.Fatalf("SignAllInputs: %+v", err)
	}
	for i := range tx.Inputs {
		err = VerifyInput(tx, i, owner)
		if err != nil {
			t.Fatalf("VerifyInput(%d): %+v", i, err)
		}
	}

	stranger := testKeyPairAndScript(t, 8)
	err = VerifyInput(tx, 0, stranger)
	if err == nil {
		t.Fatalf("VerifyInput: expected a signature by another key to be rejected")
	}

	tx.Outputs[0].Value++
	err = VerifyInput(tx, 0, owner)
	if err == nil {
		t.Fatalf("VerifyInput: expected a signature over a modified transaction to be rejected")
	}

	tx.Inputs[1].SignatureScript = []byte{1, 2, 3}
	err = VerifyInput(tx, 1, owner)
	if err == nil {
		t.Fatalf("VerifyInput: expected a malformed signature script to be rejected")
	}
}

func TestKeyPairFromPrivateKeyRejectsBadLength(t *testing.T) {
	_, err := KeyPairFromPrivateKey([]byte{1, 2, 3})
	if err == nil {
		t.Fatalf("KeyPairFromPrivateKey: expected an error for a short key")
	}
}
