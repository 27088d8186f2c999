package testutils

import (
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/constants"
	"github.com/kaspanet/forkledger/domain/consensus/utils/txsigning"
	"github.com/pkg/errors"
)

// CreateSignedTransaction builds a transaction spending outpoints, all owned
// by spender, into outputs, and signs every input
func CreateSignedTransaction(spender *TestKey, outpoints []*externalapi.DomainOutpoint,
	outputs []*externalapi.DomainTransactionOutput) *externalapi.DomainTransaction {

	inputs := make([]*externalapi.DomainTransactionInput, len(outpoints))
	for i, outpoint := range outpoints {
		inputs[i] = &externalapi.DomainTransactionInput{PreviousOutpoint: *outpoint}
	}
	tx := &externalapi.DomainTransaction{
		Version: constants.TransactionVersion,
		Inputs:  inputs,
		Outputs: outputs,
	}
	err := txsigning.SignAllInputs(tx, spender.KeyPair)
	if err != nil {
		panic(errors.Wrapf(err, "Couldn't sign a test transaction. This should never happen"))
	}
	return tx
}

// CreatePaymentTransaction spends a single outpoint owned by spender and pays
// amount to recipient
func CreatePaymentTransaction(spender *TestKey, outpoint *externalapi.DomainOutpoint,
	recipient *TestKey, amount uint64) *externalapi.DomainTransaction {

	return CreateSignedTransaction(spender, []*externalapi.DomainOutpoint{outpoint},
		[]*externalapi.DomainTransactionOutput{{Value: amount, ScriptPublicKey: recipient.ScriptPublicKey}})
}
