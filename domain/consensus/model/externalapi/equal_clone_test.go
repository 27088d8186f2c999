package externalapi

import (
	"reflect"
	"testing"
)

func initTestBlockForClone() *DomainBlock {
	return &DomainBlock{
		Header: &DomainBlockHeader{
			Version:            1,
			ParentHash:         NewDomainHashFromByteArray(&[DomainHashSize]byte{1}),
			TimeInMilliseconds: 5,
			Nonce:              6,
		},
		Transactions: []*DomainTransaction{{
			Version: 0,
			Inputs: []*DomainTransactionInput{{
				PreviousOutpoint: DomainOutpoint{
					TransactionID: *NewDomainTransactionIDFromByteArray(&[DomainHashSize]byte{2}),
					Index:         1,
				},
				SignatureScript: []byte{1, 2, 3},
			}},
			Outputs: []*DomainTransactionOutput{{Value: 10, ScriptPublicKey: []byte{4}}},
		}},
		Coinbase: &DomainTransaction{
			Outputs: []*DomainTransactionOutput{{Value: 50, ScriptPublicKey: []byte{5}}},
			Payload: []byte{7},
		},
	}
}

func TestDomainBlock_Clone(t *testing.T) {
	block := initTestBlockForClone()
	clone := block.Clone()
	if !reflect.DeepEqual(block, clone) {
		t.Fatalf("[DeepEqual] clone should be equal to the original")
	}
	if !block.Equal(clone) {
		t.Fatalf("[Equal] clone should be equal to the original")
	}

	clone.Transactions[0].Inputs[0].SignatureScript[0] = 9
	clone.Coinbase.Outputs[0].Value++
	if block.Transactions[0].Inputs[0].SignatureScript[0] != 1 || block.Coinbase.Outputs[0].Value != 50 {
		t.Fatalf("modifying the clone changed the original")
	}
}

func TestDomainBlock_Equal(t *testing.T) {
	tests := []struct {
		name           string
		modify         func(block *DomainBlock)
		expectedResult bool
	}{
		{
			name:           "unchanged",
			modify:         func(block *DomainBlock) {},
			expectedResult: true,
		},
		{
			name:           "different nonce",
			modify:         func(block *DomainBlock) { block.Header.Nonce++ },
			expectedResult: false,
		},
		{
			name:           "genesis parent",
			modify:         func(block *DomainBlock) { block.Header.ParentHash = nil },
			expectedResult: false,
		},
		{
			name:           "different coinbase payload",
			modify:         func(block *DomainBlock) { block.Coinbase.Payload = []byte{8} },
			expectedResult: false,
		},
		{
			name:           "different output script",
			modify:         func(block *DomainBlock) { block.Transactions[0].Outputs[0].ScriptPublicKey = []byte{0} },
			expectedResult: false,
		},
		{
			name:           "missing transaction",
			modify:         func(block *DomainBlock) { block.Transactions = nil },
			expectedResult: false,
		},
	}

	base := initTestBlockForClone()
	for _, test := range tests {
		other := initTestBlockForClone()
		test.modify(other)
		if base.Equal(other) != test.expectedResult {
			t.Fatalf("%s: expected Equal to return %t", test.name, test.expectedResult)
		}
	}

	var nilBlock *DomainBlock
	if !nilBlock.Equal(nil) || nilBlock.Equal(base) {
		t.Fatalf("nil blocks are equal only to nil")
	}
}

func TestDomainTransaction_IsCoinbase(t *testing.T) {
	block := initTestBlockForClone()
	if !block.Coinbase.IsCoinbase() {
		t.Fatalf("a transaction without inputs is a coinbase")
	}
	if block.Transactions[0].IsCoinbase() {
		t.Fatalf("a transaction with inputs is not a coinbase")
	}
}

func TestDomainOutpointIsAMapKey(t *testing.T) {
	id := NewDomainTransactionIDFromByteArray(&[DomainHashSize]byte{3})
	outpoints := map[DomainOutpoint]struct{}{
		*NewDomainOutpoint(id, 0): {},
	}
	if _, ok := outpoints[*NewDomainOutpoint(id, 0)]; !ok {
		t.Fatalf("equal outpoints are expected to map to the same key")
	}
	if _, ok := outpoints[*NewDomainOutpoint(id, 1)]; ok {
		t.Fatalf("outpoints with different indexes are expected to differ")
	}
}

func TestBlockInfo_Clone(t *testing.T) {
	blockInfos := []*BlockInfo{
		{Exists: true, Height: 4, IsBest: true, HasUTXOSet: true},
		{Exists: true, Height: 1, IsBest: false, HasUTXOSet: false},
		{},
	}
	for i, blockInfo := range blockInfos {
		if !reflect.DeepEqual(blockInfo, blockInfo.Clone()) {
			t.Fatalf("Test #%d:[DeepEqual] clone should be equal to the original", i)
		}
	}
}
