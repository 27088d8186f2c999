package serialization

import (
	"bytes"
	"io"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

// WriteOutpointAndUTXOEntry writes an outpoint followed by the entry it
// points to
func WriteOutpointAndUTXOEntry(w io.Writer, outpoint *externalapi.DomainOutpoint, entry externalapi.UTXOEntry) error {
	err := WriteElements(w, outpoint.TransactionID, outpoint.Index, entry.Amount(), entry.IsCoinbase())
	if err != nil {
		return err
	}
	return WriteVarBytes(w, entry.ScriptPublicKey())
}

// SerializeOutpointAndUTXOEntry returns the canonical byte representation
// of a single UTXO set element
func SerializeOutpointAndUTXOEntry(outpoint *externalapi.DomainOutpoint, entry externalapi.UTXOEntry) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := WriteOutpointAndUTXOEntry(buf, outpoint, entry)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
