package testutils

import (
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/utxo"
)

// FundedUTXOSet returns a UTXO set holding one output of amount for each
// owner, together with the outpoints of those outputs
func FundedUTXOSet(amount uint64, owners ...*TestKey) (externalapi.UTXOSet, []*externalapi.DomainOutpoint) {
	utxoSet := utxo.NewUTXOSet()
	outpoints := make([]*externalapi.DomainOutpoint, len(owners))
	for i, owner := range owners {
		outpoints[i] = externalapi.NewDomainOutpoint(
			externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{0xfe, byte(i)}), 0)
		utxoSet.Add(outpoints[i], utxo.NewUTXOEntry(amount, owner.ScriptPublicKey, true))
	}
	return utxoSet, outpoints
}
