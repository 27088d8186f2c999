package utxo

import (
	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/multiset"
	"github.com/kaspanet/forkledger/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

type utxoCollection map[externalapi.DomainOutpoint]externalapi.UTXOEntry

func (uc utxoCollection) clone() utxoCollection {
	clone := make(utxoCollection, len(uc))
	for outpoint, entry := range uc {
		clone[outpoint] = entry
	}
	return clone
}

// utxoSet is a copy-on-write UTXO set. Clones share the collection and the
// multiset until one of the sharing sets is mutated, at which point the
// mutating set copies them first.
//
// Once a set has been cloned its copyOnWrite flag stays set, so cloning it
// again writes nothing. This makes concurrent Clone calls on a set that is
// no longer mutated safe.
type utxoSet struct {
	collection  utxoCollection
	multiset    model.Multiset
	copyOnWrite bool
}

// NewUTXOSet returns an empty UTXO set
func NewUTXOSet() externalapi.UTXOSet {
	return &utxoSet{
		collection: utxoCollection{},
		multiset:   multiset.New(),
	}
}

// NewUTXOSetFromPairs returns a UTXO set holding the given pairs
func NewUTXOSetFromPairs(pairs []*externalapi.OutpointAndUTXOEntryPair) externalapi.UTXOSet {
	set := NewUTXOSet()
	for _, pair := range pairs {
		set.Add(pair.Outpoint, pair.UTXOEntry)
	}
	return set
}

func (s *utxoSet) Get(outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, bool) {
	entry, ok := s.collection[*outpoint]
	return entry, ok
}

func (s *utxoSet) Contains(outpoint *externalapi.DomainOutpoint) bool {
	_, ok := s.collection[*outpoint]
	return ok
}

func (s *utxoSet) Len() int {
	return len(s.collection)
}

func (s *utxoSet) Iterator() externalapi.ReadOnlyUTXOSetIterator {
	return newIterator(s.collection)
}

// Add inserts entry at outpoint, replacing whatever was there
func (s *utxoSet) Add(outpoint *externalapi.DomainOutpoint, entry externalapi.UTXOEntry) {
	s.ensureOwned()
	if existing, ok := s.collection[*outpoint]; ok {
		s.multiset.Remove(serializeElement(outpoint, existing))
	}
	s.collection[*outpoint] = entry
	s.multiset.Add(serializeElement(outpoint, entry))
}

// Remove deletes outpoint from the set. Removing a missing outpoint is a no-op.
func (s *utxoSet) Remove(outpoint *externalapi.DomainOutpoint) {
	existing, ok := s.collection[*outpoint]
	if !ok {
		return
	}
	s.ensureOwned()
	delete(s.collection, *outpoint)
	s.multiset.Remove(serializeElement(outpoint, existing))
}

func (s *utxoSet) Clone() externalapi.UTXOSet {
	if !s.copyOnWrite {
		s.copyOnWrite = true
	}
	return &utxoSet{
		collection:  s.collection,
		multiset:    s.multiset,
		copyOnWrite: true,
	}
}

func (s *utxoSet) Commitment() *externalapi.DomainHash {
	return s.multiset.Hash()
}

func (s *utxoSet) ensureOwned() {
	if !s.copyOnWrite {
		return
	}
	s.collection = s.collection.clone()
	s.multiset = s.multiset.Clone()
	s.copyOnWrite = false
}

func serializeElement(outpoint *externalapi.DomainOutpoint, entry externalapi.UTXOEntry) []byte {
	serialized, err := serialization.SerializeOutpointAndUTXOEntry(outpoint, entry)
	if err != nil {
		// Writing into a bytes.Buffer cannot fail
		panic(errors.Wrap(err, "SerializeOutpointAndUTXOEntry unexpectedly failed"))
	}
	return serialized
}
