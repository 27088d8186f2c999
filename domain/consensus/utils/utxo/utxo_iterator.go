package utxo

import (
	"sort"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

type utxoIterator struct {
	index  int
	pairs  []externalapi.OutpointAndUTXOEntryPair
	closed bool
}

// newIterator captures the content of collection at creation time, so
// later mutations of the set are not visible through it
func newIterator(collection utxoCollection) externalapi.ReadOnlyUTXOSetIterator {
	pairs := make([]externalapi.OutpointAndUTXOEntryPair, 0, len(collection))
	for outpoint, entry := range collection {
		outpoint := outpoint
		pairs = append(pairs, externalapi.OutpointAndUTXOEntryPair{Outpoint: &outpoint, UTXOEntry: entry})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return outpointLess(pairs[i].Outpoint, pairs[j].Outpoint)
	})
	return &utxoIterator{index: -1, pairs: pairs}
}

func outpointLess(a, b *externalapi.DomainOutpoint) bool {
	if !a.TransactionID.Equal(&b.TransactionID) {
		return (*externalapi.DomainHash)(&a.TransactionID).Less((*externalapi.DomainHash)(&b.TransactionID))
	}
	return a.Index < b.Index
}

func (u *utxoIterator) First() bool {
	if u.closed {
		panic("Tried using a closed utxoIterator")
	}
	u.index = 0
	return len(u.pairs) > 0
}

func (u *utxoIterator) Next() bool {
	if u.closed {
		panic("Tried using a closed utxoIterator")
	}
	u.index++
	return u.index < len(u.pairs)
}

func (u *utxoIterator) Get() (outpoint *externalapi.DomainOutpoint, utxoEntry externalapi.UTXOEntry, err error) {
	if u.closed {
		return nil, nil, errors.New("Tried using a closed utxoIterator")
	}
	if u.index < 0 || u.index >= len(u.pairs) {
		return nil, nil, errors.New("utxoIterator is not positioned on an entry")
	}
	pair := u.pairs[u.index]
	outpointClone := *pair.Outpoint
	return &outpointClone, pair.UTXOEntry, nil
}

func (u *utxoIterator) Close() error {
	if u.closed {
		return errors.New("Tried closing an already closed utxoIterator")
	}
	u.closed = true
	u.pairs = nil
	return nil
}
