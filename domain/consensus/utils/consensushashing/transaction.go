package consensushashing

import (
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/hashes"
	"github.com/kaspanet/forkledger/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// TransactionID generates the ID of the given transaction.
// Signature scripts are excluded, so signing a transaction never changes its ID.
func TransactionID(tx *externalapi.DomainTransaction) *externalapi.DomainTransactionID {
	writer := hashes.NewTransactionIDWriter()
	err := serialization.WriteTransaction(writer, tx, serialization.TxEncodingExcludeSignatureScript)
	if err != nil {
		// It seems like this could only happen if the writer returned an error.
		// and this writer should never return an error (no allocations or possible failures)
		// the only non-writer error path here is unknown types in `WriteElement`
		panic(errors.Wrap(err, "TransactionID() failed. this should never fail for structurally-valid transactions"))
	}
	return (*externalapi.DomainTransactionID)(writer.Finalize())
}

// TransactionIDs converts the provided slice of DomainTransactions
// to a corresponding slice of TransactionIDs
func TransactionIDs(txs []*externalapi.DomainTransaction) []*externalapi.DomainTransactionID {
	txIDs := make([]*externalapi.DomainTransactionID, len(txs))
	for i, tx := range txs {
		txIDs[i] = TransactionID(tx)
	}
	return txIDs
}

// CalculateSignatureHash returns the hash an owner signs in order to spend
// the output referenced by the inputIndex'th input of tx.
func CalculateSignatureHash(tx *externalapi.DomainTransaction, inputIndex int) (*externalapi.DomainHash, error) {
	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return nil, errors.Errorf("inputIndex %d is out of range for a transaction with %d inputs",
			inputIndex, len(tx.Inputs))
	}
	writer := hashes.NewTransactionSigningHashWriter()
	err := serialization.WriteTransaction(writer, tx, serialization.TxEncodingExcludeSignatureScript)
	if err != nil {
		return nil, err
	}
	err = serialization.WriteElement(writer, uint32(inputIndex))
	if err != nil {
		return nil, err
	}
	return writer.Finalize(), nil
}
