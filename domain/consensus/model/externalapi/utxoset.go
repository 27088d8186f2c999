package externalapi

// ReadOnlyUTXOSetIterator is an iterator over all entries in a
// UTXOSet. Entries are visited in outpoint order.
type ReadOnlyUTXOSetIterator interface {
	First() bool
	Next() bool
	Get() (outpoint *DomainOutpoint, utxoEntry UTXOEntry, err error)
	Close() error
}

// UTXOSet is a ledger snapshot: a mapping from spendable output identity to
// output data.
//
// Clone is cheap: the clone shares storage with its source until either of
// them is mutated, and neither ever observes the other's later mutations.
type UTXOSet interface {
	Get(outpoint *DomainOutpoint) (UTXOEntry, bool)
	Contains(outpoint *DomainOutpoint) bool
	Len() int
	Iterator() ReadOnlyUTXOSetIterator

	Add(outpoint *DomainOutpoint, entry UTXOEntry)
	Remove(outpoint *DomainOutpoint)

	Clone() UTXOSet

	// Commitment returns a hash committing to the full content of the set.
	// Two sets with equal content have equal commitments.
	Commitment() *DomainHash
}
