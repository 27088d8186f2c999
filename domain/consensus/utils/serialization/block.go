package serialization

import (
	"bytes"
	"io"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

const maxTransactionsInBlock = 1 << 20

// WriteBlockHeader serializes header into w
func WriteBlockHeader(w io.Writer, header *externalapi.DomainBlockHeader) error {
	hasParent := header.ParentHash != nil
	err := WriteElements(w, header.Version, hasParent)
	if err != nil {
		return err
	}
	if hasParent {
		err = WriteElement(w, header.ParentHash)
		if err != nil {
			return err
		}
	}
	return WriteElements(w, header.TimeInMilliseconds, header.Nonce)
}

// ReadBlockHeader deserializes a header written by WriteBlockHeader
func ReadBlockHeader(r io.Reader) (*externalapi.DomainBlockHeader, error) {
	header := &externalapi.DomainBlockHeader{}
	var hasParent bool
	err := ReadElements(r, &header.Version, &hasParent)
	if err != nil {
		return nil, err
	}
	if hasParent {
		header.ParentHash = externalapi.NewZeroHash()
		err = ReadElement(r, header.ParentHash)
		if err != nil {
			return nil, err
		}
	}
	err = ReadElements(r, &header.TimeInMilliseconds, &header.Nonce)
	if err != nil {
		return nil, err
	}
	return header, nil
}

// WriteBlock serializes block into w: the header, the coinbase and then
// the regular transactions in order.
func WriteBlock(w io.Writer, block *externalapi.DomainBlock) error {
	if block.Header == nil || block.Coinbase == nil {
		return errors.New("cannot serialize a block without a header or a coinbase")
	}
	err := WriteBlockHeader(w, block.Header)
	if err != nil {
		return err
	}
	err = WriteTransaction(w, block.Coinbase, TxEncodingFull)
	if err != nil {
		return err
	}
	err = WriteElement(w, uint64(len(block.Transactions)))
	if err != nil {
		return err
	}
	for _, tx := range block.Transactions {
		err = WriteTransaction(w, tx, TxEncodingFull)
		if err != nil {
			return err
		}
	}
	return nil
}

// SerializeBlock returns the encoding of block
func SerializeBlock(block *externalapi.DomainBlock) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := WriteBlock(buf, block)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeBlock is the inverse of SerializeBlock
func DeserializeBlock(serialized []byte) (*externalapi.DomainBlock, error) {
	r := bytes.NewReader(serialized)
	header, err := ReadBlockHeader(r)
	if err != nil {
		return nil, err
	}
	coinbase, err := ReadTransaction(r)
	if err != nil {
		return nil, err
	}
	var transactionCount uint64
	err = ReadElement(r, &transactionCount)
	if err != nil {
		return nil, err
	}
	if transactionCount > maxTransactionsInBlock {
		return nil, errors.Wrapf(errMalformed, "too many transactions: %d", transactionCount)
	}
	transactions := make([]*externalapi.DomainTransaction, transactionCount)
	for i := range transactions {
		transactions[i], err = ReadTransaction(r)
		if err != nil {
			return nil, err
		}
	}
	if r.Len() != 0 {
		return nil, errors.Wrapf(errMalformed, "%d trailing bytes after block", r.Len())
	}
	return &externalapi.DomainBlock{
		Header:       header,
		Transactions: transactions,
		Coinbase:     coinbase,
	}, nil
}
