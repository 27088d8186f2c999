package chainnodestore

import (
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus/model"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/utxo"
)

func testNode(hashByte byte, parent *model.ChainNode) *model.ChainNode {
	hash := externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{hashByte})
	header := &externalapi.DomainBlockHeader{}
	height := uint64(model.GenesisHeight)
	if parent != nil {
		header.ParentHash = parent.Hash()
		height = parent.Height() + 1
	}
	block := &externalapi.DomainBlock{Header: header, Coinbase: &externalapi.DomainTransaction{}}
	return model.NewChainNode(block, hash, height, utxo.NewUTXOSet())
}

func TestChainNodeStore(t *testing.T) {
	store := New()
	genesis := testNode(1, nil)
	child := testNode(2, genesis)
	sibling := testNode(3, genesis)
	orphan := testNode(4, testNode(5, nil))

	for _, node := range []*model.ChainNode{genesis, child, sibling} {
		err := store.Insert(node)
		if err != nil {
			t.Fatalf("Insert: %+v", err)
		}
	}
	if err := store.Insert(child); err == nil {
		t.Fatalf("Insert: expected an error when inserting a node twice")
	}
	if err := store.Insert(orphan); err == nil {
		t.Fatalf("Insert: expected an error when the parent is not in the store")
	}

	if store.Count() != 3 {
		t.Fatalf("Count: expected 3, got %d", store.Count())
	}
	if store.ChildCount(genesis.Hash()) != 2 {
		t.Fatalf("ChildCount: expected 2, got %d", store.ChildCount(genesis.Hash()))
	}
	if hashes := store.HashesAtHeight(2); len(hashes) != 2 {
		t.Fatalf("HashesAtHeight: expected 2 hashes, got %d", len(hashes))
	}

	if err := store.Delete(genesis.Hash()); err == nil {
		t.Fatalf("Delete: expected an error when deleting a node with children")
	}
	if err := store.Delete(child.Hash()); err != nil {
		t.Fatalf("Delete: %+v", err)
	}
	if store.Has(child.Hash()) || store.ChildCount(genesis.Hash()) != 1 {
		t.Fatalf("Delete did not update the store")
	}

	released := sibling.WithoutUTXOSet()
	if err := store.Replace(released); err != nil {
		t.Fatalf("Replace: %+v", err)
	}
	stored, ok := store.Get(sibling.Hash())
	if !ok || stored.HasUTXOSet() {
		t.Fatalf("Replace did not swap the stored node")
	}
	if err := store.Replace(child); err == nil {
		t.Fatalf("Replace: expected an error for a node that is not in the store")
	}
}
