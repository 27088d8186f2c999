package model

import "github.com/kaspanet/forkledger/domain/consensus/model/externalapi"

// Multiset is a set of byte strings whose hash does not depend on the
// order in which elements were added or removed
type Multiset interface {
	Add(data []byte)
	Remove(data []byte)
	Hash() *externalapi.DomainHash
	Clone() Multiset
}
