package utxo

import (
	"bytes"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

type utxoEntry struct {
	amount          uint64
	scriptPublicKey []byte
	isCoinbase      bool
}

// NewUTXOEntry creates a new utxoEntry representing the given txOut
func NewUTXOEntry(amount uint64, scriptPublicKey []byte, isCoinbase bool) externalapi.UTXOEntry {
	scriptPublicKeyClone := make([]byte, len(scriptPublicKey))
	copy(scriptPublicKeyClone, scriptPublicKey)
	return &utxoEntry{
		amount:          amount,
		scriptPublicKey: scriptPublicKeyClone,
		isCoinbase:      isCoinbase,
	}
}

func (u *utxoEntry) Amount() uint64 {
	return u.amount
}

func (u *utxoEntry) ScriptPublicKey() []byte {
	clone := make([]byte, len(u.scriptPublicKey))
	copy(clone, u.scriptPublicKey)
	return clone
}

func (u *utxoEntry) IsCoinbase() bool {
	return u.isCoinbase
}

// Equal returns whether entry equals to other
func (u *utxoEntry) Equal(other externalapi.UTXOEntry) bool {
	if u == nil || other == nil {
		return u == nil && other == nil
	}

	return u.amount == other.Amount() &&
		u.isCoinbase == other.IsCoinbase() &&
		bytes.Equal(u.scriptPublicKey, other.ScriptPublicKey())
}
