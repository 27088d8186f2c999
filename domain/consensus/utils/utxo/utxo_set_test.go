package utxo

import (
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

func outpoint(txIDByte byte, index uint32) *externalapi.DomainOutpoint {
	return externalapi.NewDomainOutpoint(
		externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{txIDByte}), index)
}

func TestUTXOSetAddRemove(t *testing.T) {
	set := NewUTXOSet()
	emptyCommitment := set.Commitment()

	entry := NewUTXOEntry(10, []byte{1, 2}, false)
	set.Add(outpoint(1, 0), entry)
	if !set.Contains(outpoint(1, 0)) {
		t.Fatalf("Contains: expected the added outpoint to be in the set")
	}
	got, ok := set.Get(outpoint(1, 0))
	if !ok || !got.Equal(entry) {
		t.Fatalf("Get: expected %v, got %v", entry, got)
	}
	if set.Commitment().Equal(emptyCommitment) {
		t.Fatalf("Commitment did not change after Add")
	}

	set.Remove(outpoint(2, 0))
	if set.Len() != 1 {
		t.Fatalf("Removing a missing outpoint changed Len to %d", set.Len())
	}

	set.Remove(outpoint(1, 0))
	if set.Len() != 0 {
		t.Fatalf("Len: expected 0, got %d", set.Len())
	}
	if !set.Commitment().Equal(emptyCommitment) {
		t.Fatalf("Commitment of an emptied set differs from the commitment of a new set")
	}
}

func TestUTXOSetCommitmentIsOrderIndependent(t *testing.T) {
	first := NewUTXOSet()
	first.Add(outpoint(1, 0), NewUTXOEntry(1, []byte{1}, false))
	first.Add(outpoint(2, 1), NewUTXOEntry(2, []byte{2}, true))

	second := NewUTXOSet()
	second.Add(outpoint(2, 1), NewUTXOEntry(2, []byte{2}, true))
	second.Add(outpoint(1, 0), NewUTXOEntry(1, []byte{1}, false))

	if !first.Commitment().Equal(second.Commitment()) {
		t.Fatalf("sets with equal content have different commitments")
	}

	second.Add(outpoint(1, 0), NewUTXOEntry(5, []byte{1}, false))
	if first.Commitment().Equal(second.Commitment()) {
		t.Fatalf("replacing an entry did not change the commitment")
	}
}

func TestUTXOSetCloneIsolation(t *testing.T) {
	source := NewUTXOSet()
	source.Add(outpoint(1, 0), NewUTXOEntry(1, []byte{1}, false))
	sourceCommitment := source.Commitment()

	clone := source.Clone()
	clone.Add(outpoint(2, 0), NewUTXOEntry(2, []byte{2}, false))
	clone.Remove(outpoint(1, 0))

	if source.Len() != 1 || !source.Contains(outpoint(1, 0)) || source.Contains(outpoint(2, 0)) {
		t.Fatalf("mutating a clone changed its source")
	}
	if !source.Commitment().Equal(sourceCommitment) {
		t.Fatalf("mutating a clone changed the source's commitment")
	}

	secondClone := source.Clone()
	source.Add(outpoint(3, 0), NewUTXOEntry(3, []byte{3}, false))
	if secondClone.Contains(outpoint(3, 0)) {
		t.Fatalf("mutating a source changed its clone")
	}
	if clone.Contains(outpoint(3, 0)) || clone.Len() != 1 {
		t.Fatalf("mutating a source changed an earlier clone")
	}
}

func TestUTXOSetIterator(t *testing.T) {
	set := NewUTXOSet()
	set.Add(outpoint(2, 0), NewUTXOEntry(3, nil, false))
	set.Add(outpoint(1, 1), NewUTXOEntry(2, nil, false))
	set.Add(outpoint(1, 0), NewUTXOEntry(1, nil, false))

	iterator := set.Iterator()
	set.Remove(outpoint(2, 0))

	var amounts []uint64
	for ok := iterator.First(); ok; ok = iterator.Next() {
		_, entry, err := iterator.Get()
		if err != nil {
			t.Fatalf("Get: %+v", err)
		}
		amounts = append(amounts, entry.Amount())
	}
	if len(amounts) != 3 || amounts[0] != 1 || amounts[1] != 2 || amounts[2] != 3 {
		t.Fatalf("unexpected iteration order %v", amounts)
	}

	err := iterator.Close()
	if err != nil {
		t.Fatalf("Close: %+v", err)
	}
	err = iterator.Close()
	if err == nil {
		t.Fatalf("Close: expected an error when closing twice")
	}
}
