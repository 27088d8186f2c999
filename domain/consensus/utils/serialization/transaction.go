package serialization

import (
	"bytes"
	"io"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// TxEncoding is a bitmask defining which parts of a transaction are encoded
type TxEncoding uint8

const (
	// TxEncodingFull encodes every field of the transaction
	TxEncodingFull TxEncoding = 0

	// TxEncodingExcludeSignatureScript encodes all fields except the
	// inputs' signature scripts. It is used for transaction IDs and
	// signature hashes, which must not depend on the signatures.
	TxEncodingExcludeSignatureScript TxEncoding = 1
)

// maxInputsOrOutputs bounds the counts read from a serialized transaction
const maxInputsOrOutputs = 1 << 16

// WriteTransaction serializes tx into w using the given encoding
func WriteTransaction(w io.Writer, tx *externalapi.DomainTransaction, encoding TxEncoding) error {
	err := WriteElements(w, tx.Version, uint64(len(tx.Inputs)))
	if err != nil {
		return err
	}
	for _, input := range tx.Inputs {
		err = WriteElements(w, input.PreviousOutpoint.TransactionID, input.PreviousOutpoint.Index)
		if err != nil {
			return err
		}
		var signatureScript []byte
		if encoding&TxEncodingExcludeSignatureScript != TxEncodingExcludeSignatureScript {
			signatureScript = input.SignatureScript
		}
		err = WriteVarBytes(w, signatureScript)
		if err != nil {
			return err
		}
	}

	err = WriteElement(w, uint64(len(tx.Outputs)))
	if err != nil {
		return err
	}
	for _, output := range tx.Outputs {
		err = WriteElement(w, output.Value)
		if err != nil {
			return err
		}
		err = WriteVarBytes(w, output.ScriptPublicKey)
		if err != nil {
			return err
		}
	}

	return WriteVarBytes(w, tx.Payload)
}

// ReadTransaction deserializes a fully encoded transaction from r
func ReadTransaction(r io.Reader) (*externalapi.DomainTransaction, error) {
	tx := &externalapi.DomainTransaction{}
	var inputCount uint64
	err := ReadElements(r, &tx.Version, &inputCount)
	if err != nil {
		return nil, err
	}
	if inputCount > maxInputsOrOutputs {
		return nil, errors.Wrapf(errMalformed, "too many inputs: %d", inputCount)
	}
	tx.Inputs = make([]*externalapi.DomainTransactionInput, inputCount)
	for i := range tx.Inputs {
		input := &externalapi.DomainTransactionInput{}
		err = ReadElements(r, &input.PreviousOutpoint.TransactionID, &input.PreviousOutpoint.Index)
		if err != nil {
			return nil, err
		}
		input.SignatureScript, err = ReadVarBytes(r)
		if err != nil {
			return nil, err
		}
		tx.Inputs[i] = input
	}

	var outputCount uint64
	err = ReadElement(r, &outputCount)
	if err != nil {
		return nil, err
	}
	if outputCount > maxInputsOrOutputs {
		return nil, errors.Wrapf(errMalformed, "too many outputs: %d", outputCount)
	}
	tx.Outputs = make([]*externalapi.DomainTransactionOutput, outputCount)
	for i := range tx.Outputs {
		output := &externalapi.DomainTransactionOutput{}
		err = ReadElement(r, &output.Value)
		if err != nil {
			return nil, err
		}
		output.ScriptPublicKey, err = ReadVarBytes(r)
		if err != nil {
			return nil, err
		}
		tx.Outputs[i] = output
	}

	tx.Payload, err = ReadVarBytes(r)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// SerializeTransaction returns the full encoding of tx
func SerializeTransaction(tx *externalapi.DomainTransaction) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := WriteTransaction(buf, tx, TxEncodingFull)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeTransaction is the inverse of SerializeTransaction
func DeserializeTransaction(serialized []byte) (*externalapi.DomainTransaction, error) {
	r := bytes.NewReader(serialized)
	tx, err := ReadTransaction(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errors.Wrapf(errMalformed, "%d trailing bytes after transaction", r.Len())
	}
	return tx, nil
}
