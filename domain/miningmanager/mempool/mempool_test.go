package mempool

import (
	"sync"
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

func transactionWithPayload(payload byte) *externalapi.DomainTransaction {
	return &externalapi.DomainTransaction{
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 1, ScriptPublicKey: []byte{1}}},
		Payload: []byte{payload},
	}
}

func TestMempoolAddAndRemove(t *testing.T) {
	pool := New()
	first := transactionWithPayload(1)
	second := transactionWithPayload(2)
	pool.Add(first)
	pool.Add(second)
	pool.Add(first)

	if pool.Count() != 3 {
		t.Fatalf("Count: expected 3, got %d", pool.Count())
	}
	transactions := pool.Transactions()
	if !transactions[0].Equal(first) || !transactions[1].Equal(second) {
		t.Fatalf("Transactions are not returned in submission order")
	}

	transactions[0].Payload[0] = 9
	if !pool.Transactions()[0].Equal(first) {
		t.Fatalf("mutating a returned transaction changed the pool")
	}

	pool.RemoveTransactions([]*externalapi.DomainTransaction{first})
	if pool.Count() != 1 || !pool.Transactions()[0].Equal(second) {
		t.Fatalf("RemoveTransactions did not remove every copy of the transaction")
	}
}

func TestMempoolConcurrentAccess(t *testing.T) {
	pool := New()
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				pool.Add(transactionWithPayload(byte(i)))
				_ = pool.Transactions()
			}
		}(i)
	}
	wg.Wait()
	if pool.Count() != 400 {
		t.Fatalf("Count: expected 400, got %d", pool.Count())
	}
}
