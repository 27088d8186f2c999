package txsigning

import (
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

// PrivateKeySize is the length of a serialized private key
const PrivateKeySize = 32

// ScriptPublicKeySize is the length of a script public key, which is the
// owner's serialized x-only Schnorr public key
const ScriptPublicKeySize = 32

// SignatureSize is the length of a signature script
const SignatureSize = 64

// KeyPairFromPrivateKey parses a 32-byte private key
func KeyPairFromPrivateKey(privateKey []byte) (*secp256k1.SchnorrKeyPair, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, errors.Errorf("private key must be %d bytes long but got %d", PrivateKeySize, len(privateKey))
	}
	keyPair, err := secp256k1.DeserializeSchnorrPrivateKeyFromSlice(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return keyPair, nil
}

// ScriptPublicKey returns the script public key owned by keyPair
func ScriptPublicKey(keyPair *secp256k1.SchnorrKeyPair) ([]byte, error) {
	publicKey, err := keyPair.SchnorrPublicKey()
	if err != nil {
		return nil, err
	}
	serializedPublicKey, err := publicKey.Serialize()
	if err != nil {
		return nil, err
	}
	return serializedPublicKey[:], nil
}

// RawTxInSignature returns the serialized Schnorr signature for the input idx
// of the given transaction
func RawTxInSignature(tx *externalapi.DomainTransaction, idx int, keyPair *secp256k1.SchnorrKeyPair) ([]byte, error) {
	hash, err := consensushashing.CalculateSignatureHash(tx, idx)
	if err != nil {
		return nil, err
	}
	secpHash := secp256k1.Hash(*hash.ByteArray())
	signature, err := keyPair.SchnorrSign(&secpHash)
	if err != nil {
		return nil, errors.Errorf("cannot sign tx input: %s", err)
	}
	return signature.Serialize()[:], nil
}

// SignAllInputs signs every input of tx with keyPair and sets the
// resulting signature scripts
func SignAllInputs(tx *externalapi.DomainTransaction, keyPair *secp256k1.SchnorrKeyPair) error {
	for i, input := range tx.Inputs {
		signature, err := RawTxInSignature(tx, i, keyPair)
		if err != nil {
			return err
		}
		input.SignatureScript = signature
	}
	return nil
}

// VerifyInput checks that the signature script of input idx is a valid
// signature by the owner of scriptPublicKey
func VerifyInput(tx *externalapi.DomainTransaction, idx int, scriptPublicKey []byte) error {
	hash, err := consensushashing.CalculateSignatureHash(tx, idx)
	if err != nil {
		return err
	}
	if len(scriptPublicKey) != ScriptPublicKeySize {
		return errors.Errorf("script public key must be %d bytes long but got %d",
			ScriptPublicKeySize, len(scriptPublicKey))
	}
	publicKey, err := secp256k1.DeserializeSchnorrPubKey(scriptPublicKey)
	if err != nil {
		return errors.Wrap(err, "invalid script public key")
	}
	signatureScript := tx.Inputs[idx].SignatureScript
	if len(signatureScript) != SignatureSize {
		return errors.Errorf("signature script must be %d bytes long but got %d",
			SignatureSize, len(signatureScript))
	}
	signature, err := secp256k1.DeserializeSchnorrSignatureFromSlice(signatureScript)
	if err != nil {
		return errors.Wrap(err, "invalid signature script")
	}
	secpHash := secp256k1.Hash(*hash.ByteArray())
	if !publicKey.SchnorrVerify(&secpHash, signature) {
		return errors.Errorf("signature of input %d does not verify", idx)
	}
	return nil
}
