package util

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/kaspanet/forkledger/domain/consensus/utils/txsigning"
	"github.com/pkg/errors"
)

// pubKeyAddressVersion is the first byte of the payload of every address
// paying to a Schnorr public key
const pubKeyAddressVersion = 0

// ErrUnknownAddressType describes an error where an address can not be
// decoded because its payload starts with an unknown version byte.
var ErrUnknownAddressType = errors.New("unknown address type")

// AddressPublicKey is an address paying to a Schnorr x-only public key. Its
// script public key is the public key itself.
type AddressPublicKey struct {
	prefix    string
	publicKey [txsigning.ScriptPublicKeySize]byte
}

// NewAddressPublicKey returns a new AddressPublicKey. publicKey must be 32
// bytes.
func NewAddressPublicKey(publicKey []byte, prefix string) (*AddressPublicKey, error) {
	if len(publicKey) != txsigning.ScriptPublicKeySize {
		return nil, errors.Errorf("publicKey must be %d bytes, got %d",
			txsigning.ScriptPublicKeySize, len(publicKey))
	}
	address := &AddressPublicKey{prefix: prefix}
	copy(address.publicKey[:], publicKey)
	return address, nil
}

// DecodeAddress decodes the bech32 encoding of an address and checks that
// it belongs to the network of expectedPrefix
func DecodeAddress(address string, expectedPrefix string) (*AddressPublicKey, error) {
	prefix, fiveBitData, err := bech32.Decode(address)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding address %s failed", address)
	}
	if prefix != expectedPrefix {
		return nil, errors.Errorf("address %s is for network %s, expected %s", address, prefix, expectedPrefix)
	}
	payload, err := bech32.ConvertBits(fiveBitData, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding address %s failed", address)
	}
	if len(payload) == 0 || payload[0] != pubKeyAddressVersion {
		return nil, errors.Wrapf(ErrUnknownAddressType, "address %s", address)
	}
	return NewAddressPublicKey(payload[1:], prefix)
}

// EncodeAddress returns the bech32 string encoding of the address
func (a *AddressPublicKey) EncodeAddress() string {
	payload := make([]byte, 0, 1+len(a.publicKey))
	payload = append(payload, pubKeyAddressVersion)
	payload = append(payload, a.publicKey[:]...)

	fiveBitData, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		panic(errors.Wrap(err, "converting 8-bit groups to 5-bit groups never fails"))
	}
	encoded, err := bech32.Encode(a.prefix, fiveBitData)
	if err != nil {
		panic(errors.Wrapf(err, "encoding an address with prefix %s failed", a.prefix))
	}
	return encoded
}

// String returns the bech32 string encoding of the address
func (a *AddressPublicKey) String() string {
	return a.EncodeAddress()
}

// Prefix returns the network prefix of the address
func (a *AddressPublicKey) Prefix() string {
	return a.prefix
}

// ScriptPublicKey returns the script that outputs paying to this address carry
func (a *AddressPublicKey) ScriptPublicKey() []byte {
	scriptPublicKey := make([]byte, len(a.publicKey))
	copy(scriptPublicKey, a.publicKey[:])
	return scriptPublicKey
}
