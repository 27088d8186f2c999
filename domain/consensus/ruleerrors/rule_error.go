package ruleerrors

import (
	"fmt"
	"strings"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrBadBlock indicates a block that is structurally unusable, such as
	// one without a header or a coinbase.
	ErrBadBlock = newRuleError("ErrBadBlock")

	// ErrNoParents indicates that the block is missing parents
	ErrNoParents = newRuleError("ErrNoParents")

	// ErrTooFarBehind indicates that the block would sit too far below the
	// best block to ever become part of the best chain.
	ErrTooFarBehind = newRuleError("ErrTooFarBehind")

	// ErrNoTxInputs indicates a transaction does not have any inputs.
	ErrNoTxInputs = newRuleError("ErrNoTxInputs")

	// ErrBadSignature indicates that an input's signature script is not a
	// valid signature by the owner of the output it spends.
	ErrBadSignature = newRuleError("ErrBadSignature")

	// ErrDoubleSpendInSameTransaction indicates a transaction
	// that references the same input more than once.
	ErrDoubleSpendInSameTransaction = newRuleError("ErrDoubleSpendInSameTransaction")

	// ErrBadTxOutValue indicates an output value for a transaction is
	// invalid in some way such as being out of range.
	ErrBadTxOutValue = newRuleError("ErrBadTxOutValue")

	// ErrSpendTooHigh indicates a transaction that attempts to spend more
	// value than the sum of all of its inputs.
	ErrSpendTooHigh = newRuleError("ErrSpendTooHigh")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or transaction failed due to one of the many
// validation rules. The caller can use type assertions to determine if a
// failure was specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Message returns the name of the violated rule
func (e RuleError) Message() string {
	return e.message
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// ErrMissingTxOut indicates a transaction output referenced by an input
// either does not exist or has already been spent.
type ErrMissingTxOut struct {
	MissingOutpoints []*externalapi.DomainOutpoint
}

func (e ErrMissingTxOut) Error() string {
	return fmt.Sprintf("missing the following outpoint: %v", e.MissingOutpoints)
}

// NewErrMissingTxOut Creates a new ErrMissingTxOut error wrapped in a RuleError
func NewErrMissingTxOut(missingOutpoints []*externalapi.DomainOutpoint) error {
	return errors.WithStack(RuleError{
		message: "ErrMissingTxOut",
		inner:   ErrMissingTxOut{missingOutpoints},
	})
}

// ErrMissingParents indicates a block points to a parent that is not retained
type ErrMissingParents struct {
	MissingParentHashes []*externalapi.DomainHash
}

func (e ErrMissingParents) Error() string {
	return fmt.Sprintf("missing the following parent hashes: [%s]",
		strings.Join(hashes.ToStrings(e.MissingParentHashes), ", "))
}

// NewErrMissingParents creates a new ErrMissingParents error wrapped in a RuleError
func NewErrMissingParents(missingParentHashes []*externalapi.DomainHash) error {
	return errors.WithStack(RuleError{
		message: "ErrMissingParents",
		inner:   ErrMissingParents{missingParentHashes},
	})
}

// ErrInvalidTransactionsInNewBlock indicates that the validation oracle
// rejected some of a block's transactions
type ErrInvalidTransactionsInNewBlock struct {
	InvalidTransactionIDs []*externalapi.DomainTransactionID
}

func (e ErrInvalidTransactionsInNewBlock) Error() string {
	transactionHashes := make([]*externalapi.DomainHash, len(e.InvalidTransactionIDs))
	for i, transactionID := range e.InvalidTransactionIDs {
		transactionHashes[i] = (*externalapi.DomainHash)(transactionID)
	}
	return fmt.Sprintf("the following transactions were rejected: [%s]",
		strings.Join(hashes.ToStrings(transactionHashes), ", "))
}

// NewErrInvalidTransactionsInNewBlock creates a new ErrInvalidTransactionsInNewBlock
// error wrapped in a RuleError
func NewErrInvalidTransactionsInNewBlock(invalidTransactionIDs []*externalapi.DomainTransactionID) error {
	return errors.WithStack(RuleError{
		message: "ErrInvalidTransactionsInNewBlock",
		inner:   ErrInvalidTransactionsInNewBlock{invalidTransactionIDs},
	})
}
