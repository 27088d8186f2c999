package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/kaspanet/forkledger/domain/dagconfig"
	"github.com/pkg/errors"
)

func TestAddressRoundTrip(t *testing.T) {
	publicKey := bytes.Repeat([]byte{0x5a}, 32)
	for _, params := range []dagconfig.Params{dagconfig.MainnetParams, dagconfig.TestnetParams,
		dagconfig.SimnetParams, dagconfig.DevnetParams} {

		address, err := NewAddressPublicKey(publicKey, params.Bech32Prefix)
		if err != nil {
			t.Fatalf("NewAddressPublicKey: %+v", err)
		}
		encoded := address.EncodeAddress()
		if !strings.HasPrefix(encoded, params.Bech32Prefix+"1") {
			t.Fatalf("%s: address %s does not start with its prefix", params.Name, encoded)
		}

		decoded, err := DecodeAddress(encoded, params.Bech32Prefix)
		if err != nil {
			t.Fatalf("%s: DecodeAddress: %+v", params.Name, err)
		}
		if !bytes.Equal(decoded.ScriptPublicKey(), publicKey) {
			t.Fatalf("%s: decoded script public key %x, expected %x", params.Name, decoded.ScriptPublicKey(), publicKey)
		}
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	address, err := NewAddressPublicKey(bytes.Repeat([]byte{1}, 32), dagconfig.TestnetParams.Bech32Prefix)
	if err != nil {
		t.Fatalf("NewAddressPublicKey: %+v", err)
	}
	encoded := address.EncodeAddress()

	if _, err := DecodeAddress(encoded, dagconfig.MainnetParams.Bech32Prefix); err == nil {
		t.Fatalf("DecodeAddress: expected an error for an address of another network")
	}
	corrupted := encoded[:len(encoded)-1] + "q"
	if strings.HasSuffix(encoded, "q") {
		corrupted = encoded[:len(encoded)-1] + "p"
	}
	if _, err := DecodeAddress(corrupted, dagconfig.TestnetParams.Bech32Prefix); err == nil {
		t.Fatalf("DecodeAddress: expected a checksum error")
	}
	if _, err := NewAddressPublicKey([]byte{1, 2, 3}, "fkl"); err == nil {
		t.Fatalf("NewAddressPublicKey: expected an error for a short public key")
	}

	fiveBitData, err := bech32.ConvertBits(append([]byte{9}, bytes.Repeat([]byte{1}, 32)...), 8, 5, true)
	if err != nil {
		t.Fatalf("ConvertBits: %+v", err)
	}
	encodedWrongVersion, err := bech32.Encode("fkl", fiveBitData)
	if err != nil {
		t.Fatalf("Encode: %+v", err)
	}
	_, err = DecodeAddress(encodedWrongVersion, "fkl")
	if !errors.Is(err, ErrUnknownAddressType) {
		t.Fatalf("DecodeAddress: expected ErrUnknownAddressType, got: %+v", err)
	}
}
