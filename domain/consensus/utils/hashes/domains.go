package hashes

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

var (
	transactionIDDomain          = []byte("TransactionID")
	transactionSigningHashDomain = []byte("TransactionSigningHash")
	blockHashDomain              = []byte("BlockHash")
)

func newDomainWriter(domain []byte) HashWriter {
	blake, err := blake2b.New256(domain)
	if err != nil {
		panic(errors.Wrapf(err, "this should never happen. %s is less than 64 bytes", domain))
	}
	return HashWriter{blake}
}

// NewTransactionIDWriter returns a new HashWriter used for transaction IDs
func NewTransactionIDWriter() HashWriter {
	return newDomainWriter(transactionIDDomain)
}

// NewTransactionSigningHashWriter returns a new HashWriter used for signing on a transaction
func NewTransactionSigningHashWriter() HashWriter {
	return newDomainWriter(transactionSigningHashDomain)
}

// NewBlockHashWriter returns a new HashWriter used for hashing blocks
func NewBlockHashWriter() HashWriter {
	return newDomainWriter(blockHashDomain)
}
