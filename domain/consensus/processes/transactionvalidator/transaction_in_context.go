package transactionvalidator

import (
	"math"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/ruleerrors"
	"github.com/kaspanet/forkledger/domain/consensus/utils/constants"
	"github.com/kaspanet/forkledger/domain/consensus/utils/txsigning"
	"github.com/pkg/errors"
)

// ValidateTransaction checks whether tx can be applied to utxoSet. It never
// mutates utxoSet.
func (v *transactionValidator) ValidateTransaction(utxoSet externalapi.UTXOSet, tx *externalapi.DomainTransaction) error {
	err := checkTransactionInputCount(tx)
	if err != nil {
		return err
	}

	err = checkDuplicateTransactionInputs(tx)
	if err != nil {
		return err
	}

	totalSompiOut, err := checkTransactionOutputAmounts(tx)
	if err != nil {
		return err
	}

	totalSompiIn, err := checkTransactionInputAmounts(utxoSet, tx)
	if err != nil {
		return err
	}

	if totalSompiIn < totalSompiOut {
		return errors.Wrapf(ruleerrors.ErrSpendTooHigh, "total value of all transaction "+
			"outputs is %d which is higher than the input amount of %d sompi", totalSompiOut, totalSompiIn)
	}

	return checkTransactionSignatures(utxoSet, tx)
}

func checkTransactionInputCount(tx *externalapi.DomainTransaction) error {
	if len(tx.Inputs) == 0 {
		return errors.Wrapf(ruleerrors.ErrNoTxInputs, "transaction has no inputs")
	}
	return nil
}

func checkDuplicateTransactionInputs(tx *externalapi.DomainTransaction) error {
	existingTxOut := make(map[externalapi.DomainOutpoint]struct{})
	for _, txIn := range tx.Inputs {
		if _, exists := existingTxOut[txIn.PreviousOutpoint]; exists {
			return errors.Wrapf(ruleerrors.ErrDoubleSpendInSameTransaction, "transaction "+
				"contains duplicate inputs of %s", txIn.PreviousOutpoint)
		}
		existingTxOut[txIn.PreviousOutpoint] = struct{}{}
	}
	return nil
}

func checkTransactionOutputAmounts(tx *externalapi.DomainTransaction) (uint64, error) {
	totalSompi := uint64(0)
	for i, txOut := range tx.Outputs {
		sompi := txOut.Value
		if sompi > constants.MaxSompi {
			return 0, errors.Wrapf(ruleerrors.ErrBadTxOutValue, "transaction output %d value of %d is "+
				"higher than max allowed value of %d", i, sompi, constants.MaxSompi)
		}

		// Binary arithmetic guarantees that any overflow is detected and reported.
		newTotalSompi := totalSompi + sompi
		if newTotalSompi < totalSompi || newTotalSompi > constants.MaxSompi {
			return 0, errors.Wrapf(ruleerrors.ErrBadTxOutValue, "total value of all transaction "+
				"outputs exceeds max allowed value of %d", constants.MaxSompi)
		}
		totalSompi = newTotalSompi
	}
	return totalSompi, nil
}

func checkTransactionInputAmounts(utxoSet externalapi.UTXOSet, tx *externalapi.DomainTransaction) (uint64, error) {
	var missingOutpoints []*externalapi.DomainOutpoint
	totalSompiIn := uint64(0)
	for _, input := range tx.Inputs {
		entry, ok := utxoSet.Get(&input.PreviousOutpoint)
		if !ok {
			missingOutpoints = append(missingOutpoints, input.PreviousOutpoint.Clone())
			continue
		}
		if totalSompiIn > math.MaxUint64-entry.Amount() {
			return 0, errors.Wrapf(ruleerrors.ErrBadTxOutValue, "total value of all transaction inputs overflows")
		}
		totalSompiIn += entry.Amount()
	}
	if len(missingOutpoints) > 0 {
		return 0, ruleerrors.NewErrMissingTxOut(missingOutpoints)
	}
	return totalSompiIn, nil
}

func checkTransactionSignatures(utxoSet externalapi.UTXOSet, tx *externalapi.DomainTransaction) error {
	for i, input := range tx.Inputs {
		entry, _ := utxoSet.Get(&input.PreviousOutpoint)
		err := txsigning.VerifyInput(tx, i, entry.ScriptPublicKey())
		if err != nil {
			return errors.Wrapf(ruleerrors.ErrBadSignature, "input %d: %s", i, err)
		}
	}
	return nil
}
