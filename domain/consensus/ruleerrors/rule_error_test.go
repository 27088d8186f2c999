package ruleerrors

import (
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

func TestNewErrMissingTxOut(t *testing.T) {
	outpoint := externalapi.NewDomainOutpoint(
		externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{255, 255, 255}), 5)
	outer := NewErrMissingTxOut([]*externalapi.DomainOutpoint{outpoint})
	expectedOuterErr := "ErrMissingTxOut: missing the following outpoint: " +
		"[(ffffff0000000000000000000000000000000000000000000000000000000000: 5)]"
	inner := &ErrMissingTxOut{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrMissingTxOut: Outer should contain ErrMissingTxOut in it")
	}

	if len(inner.MissingOutpoints) != 1 {
		t.Fatalf("TestNewErrMissingTxOut: Expected len(inner.MissingOutpoints) 1, found: %d", len(inner.MissingOutpoints))
	}
	if inner.MissingOutpoints[0].Index != 5 {
		t.Fatalf("TestNewErrMissingTxOut: Expected 5. found: %d", inner.MissingOutpoints[0].Index)
	}

	rule := &RuleError{}
	if !errors.As(outer, rule) {
		t.Fatal("TestNewErrMissingTxOut: Outer should contain RuleError in it")
	}
	if rule.message != "ErrMissingTxOut" {
		t.Fatalf("TestNewErrMissingTxOut: Expected message = 'ErrMissingTxOut', found: '%s'", rule.message)
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrMissingTxOut: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}

func TestNewErrMissingParents(t *testing.T) {
	parent := externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{1})
	outer := NewErrMissingParents([]*externalapi.DomainHash{parent})

	inner := &ErrMissingParents{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrMissingParents: Outer should contain ErrMissingParents in it")
	}
	if len(inner.MissingParentHashes) != 1 || !inner.MissingParentHashes[0].Equal(parent) {
		t.Fatalf("TestNewErrMissingParents: unexpected missing parents %v", inner.MissingParentHashes)
	}
	if errors.Is(outer, ErrNoParents) {
		t.Fatal("TestNewErrMissingParents: ErrMissingParents is not expected to match ErrNoParents")
	}

	expectedOuterErr := "ErrMissingParents: missing the following parent hashes: " +
		"[0100000000000000000000000000000000000000000000000000000000000000]"
	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrMissingParents: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}

func TestNewErrInvalidTransactionsInNewBlock(t *testing.T) {
	txID := externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{2})
	otherTxID := externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{3})
	outer := NewErrInvalidTransactionsInNewBlock([]*externalapi.DomainTransactionID{txID, otherTxID})
	expectedOuterErr := "ErrInvalidTransactionsInNewBlock: the following transactions were rejected: " +
		"[0200000000000000000000000000000000000000000000000000000000000000, " +
		"0300000000000000000000000000000000000000000000000000000000000000]"
	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrInvalidTransactionsInNewBlock: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}

	inner := &ErrInvalidTransactionsInNewBlock{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrInvalidTransactionsInNewBlock: Outer should contain ErrInvalidTransactionsInNewBlock in it")
	}
	if len(inner.InvalidTransactionIDs) != 2 || !inner.InvalidTransactionIDs[0].Equal(txID) {
		t.Fatalf("TestNewErrInvalidTransactionsInNewBlock: unexpected IDs %v", inner.InvalidTransactionIDs)
	}

	rule := &RuleError{}
	if !errors.As(outer, rule) {
		t.Fatal("TestNewErrInvalidTransactionsInNewBlock: Outer should contain RuleError in it")
	}
	if rule.Message() != "ErrInvalidTransactionsInNewBlock" {
		t.Fatalf("TestNewErrInvalidTransactionsInNewBlock: Expected message = 'ErrInvalidTransactionsInNewBlock', "+
			"found: '%s'", rule.Message())
	}
}

func TestSentinelsMatchWithErrorsIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "ErrTooFarBehind", err: ErrTooFarBehind},
		{name: "ErrNoTxInputs", err: ErrNoTxInputs},
		{name: "ErrBadBlock", err: ErrBadBlock},
	}
	for _, test := range tests {
		wrapped := errors.Wrapf(test.err, "while processing")
		if !errors.Is(wrapped, test.err) {
			t.Fatalf("%s: wrapped sentinel does not match itself", test.name)
		}
		if errors.Is(wrapped, ErrNoParents) {
			t.Fatalf("%s: wrapped sentinel unexpectedly matches ErrNoParents", test.name)
		}
	}
}
