package transactionvalidator

import (
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/forkledger/domain/consensus/utils/utxo"
)

// transactionValidator exposes a set of validation classes, after which
// it's possible to determine whether either a transaction is valid
type transactionValidator struct {
}

// New instantiates a new TransactionValidator
func New() model.TransactionValidator {
	return &transactionValidator{}
}

// ValidateTransactions returns the largest subset of transactions that can be
// applied to utxoSet, and the set that results from applying them.
//
// Candidates are tried in submission order, and the remaining ones are
// retried as long as a pass accepted anything, so a transaction may spend an
// output of a later transaction in the same list.
func (v *transactionValidator) ValidateTransactions(utxoSet externalapi.UTXOSet,
	transactions []*externalapi.DomainTransaction) ([]*externalapi.DomainTransaction, externalapi.UTXOSet) {

	workingSet := utxoSet.Clone()
	isAccepted := make([]bool, len(transactions))
	for {
		acceptedInPass := false
		for i, transaction := range transactions {
			if isAccepted[i] {
				continue
			}
			err := v.ValidateTransaction(workingSet, transaction)
			if err != nil {
				log.Tracef("Transaction %s rejected in this pass: %s",
					consensushashing.TransactionID(transaction), err)
				continue
			}
			applyTransaction(workingSet, transaction)
			isAccepted[i] = true
			acceptedInPass = true
		}
		if !acceptedInPass {
			break
		}
	}

	acceptedTransactions := make([]*externalapi.DomainTransaction, 0, len(transactions))
	for i, transaction := range transactions {
		if isAccepted[i] {
			acceptedTransactions = append(acceptedTransactions, transaction)
		}
	}
	return acceptedTransactions, workingSet
}

func applyTransaction(utxoSet externalapi.UTXOSet, transaction *externalapi.DomainTransaction) {
	for _, input := range transaction.Inputs {
		utxoSet.Remove(&input.PreviousOutpoint)
	}
	transactionID := consensushashing.TransactionID(transaction)
	for i, output := range transaction.Outputs {
		outpoint := externalapi.NewDomainOutpoint(transactionID, uint32(i))
		utxoSet.Add(outpoint, utxo.NewUTXOEntry(output.Value, output.ScriptPublicKey, false))
	}
}
