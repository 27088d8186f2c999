package testutils

import (
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/txsigning"
	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

// TestKey is a deterministic key pair together with the script public key it owns
type TestKey struct {
	KeyPair         *secp256k1.SchnorrKeyPair
	ScriptPublicKey []byte
}

// NewTestKey returns the deterministic test key identified by seed. seed
// must not be zero.
func NewTestKey(seed byte) *TestKey {
	privateKey := make([]byte, txsigning.PrivateKeySize)
	privateKey[0] = 0x42
	privateKey[txsigning.PrivateKeySize-1] = seed
	keyPair, err := txsigning.KeyPairFromPrivateKey(privateKey)
	if err != nil {
		panic(errors.Wrapf(err, "Couldn't create test key %d. This should never happen", seed))
	}
	scriptPublicKey, err := txsigning.ScriptPublicKey(keyPair)
	if err != nil {
		panic(errors.Wrapf(err, "Couldn't serialize test key %d. This should never happen", seed))
	}
	return &TestKey{KeyPair: keyPair, ScriptPublicKey: scriptPublicKey}
}

// CoinbaseData returns coinbase data paying to the key
func (k *TestKey) CoinbaseData(extraData []byte) *externalapi.DomainCoinbaseData {
	return &externalapi.DomainCoinbaseData{
		ScriptPublicKey: k.ScriptPublicKey,
		ExtraData:       extraData,
	}
}
