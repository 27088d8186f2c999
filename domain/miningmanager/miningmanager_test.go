package miningmanager_test

import (
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus"
	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/forkledger/domain/consensus/utils/testutils"
	"github.com/kaspanet/forkledger/domain/miningmanager"
	"github.com/pkg/errors"
)

// setupFundedConsensus creates a test consensus whose best block pays its
// coinbase to owner, and returns the outpoint of that coinbase output
func setupFundedConsensus(t *testing.T, consensusConfig *consensus.Config, testName string,
	owner *testutils.TestKey) (consensus.TestConsensus, *externalapi.DomainOutpoint, func()) {

	tc, teardown, err := consensus.NewFactory().NewTestConsensus(consensusConfig, testName)
	if err != nil {
		t.Fatalf("Error setting up TestConsensus: %+v", err)
	}
	blockHash, _, err := tc.AddBlockWithParent(consensusConfig.GenesisHash, owner.CoinbaseData(nil), nil)
	if err != nil {
		t.Fatalf("AddBlockWithParent: %+v", err)
	}
	node, _ := tc.GetChainNode(blockHash)
	outpoint := externalapi.NewDomainOutpoint(consensushashing.TransactionID(node.Block().Coinbase), 0)
	return tc, outpoint, teardown
}

func contains(transaction *externalapi.DomainTransaction, transactions []*externalapi.DomainTransaction) bool {
	for _, candidate := range transactions {
		if candidate.Equal(transaction) {
			return true
		}
	}
	return false
}

// TestValidateAndInsertTransaction verifies that only transactions the oracle accepts reach the pool.
func TestValidateAndInsertTransaction(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, consensusConfig *consensus.Config) {
		alice := testutils.NewTestKey(1)
		bob := testutils.NewTestKey(2)
		tc, aliceOutpoint, teardown := setupFundedConsensus(t, consensusConfig, "TestValidateAndInsertTransaction", alice)
		defer teardown()

		miningManager := miningmanager.NewFactory().NewMiningManager(tc)
		payment := testutils.CreatePaymentTransaction(alice, aliceOutpoint, bob, 100)
		err := miningManager.ValidateAndInsertTransaction(payment)
		if err != nil {
			t.Fatalf("ValidateAndInsertTransaction: %+v", err)
		}

		// bob does not own aliceOutpoint, so the signature is invalid
		forged := testutils.CreatePaymentTransaction(bob, aliceOutpoint, bob, 100)
		err = miningManager.ValidateAndInsertTransaction(forged)
		if !errors.Is(err, miningmanager.ErrTransactionRejected) {
			t.Fatalf("expected ErrTransactionRejected, got: %+v", err)
		}

		transactionsFromPool := miningManager.AllTransactions()
		if len(transactionsFromPool) != 1 || !contains(payment, transactionsFromPool) {
			t.Fatalf("expected the pool to hold exactly the valid payment, got %d transactions",
				len(transactionsFromPool))
		}
	})
}

// TestGetBlockTemplate verifies that templates carry the largest valid subset of the pool and that submitting
// one clears its transactions from the pool.
func TestGetBlockTemplate(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, consensusConfig *consensus.Config) {
		alice := testutils.NewTestKey(1)
		bob := testutils.NewTestKey(2)
		carol := testutils.NewTestKey(3)
		tc, aliceOutpoint, teardown := setupFundedConsensus(t, consensusConfig, "TestGetBlockTemplate", alice)
		defer teardown()

		miningManager := miningmanager.NewFactory().NewMiningManager(tc)
		payment := testutils.CreatePaymentTransaction(alice, aliceOutpoint, bob, 100)
		doubleSpend := testutils.CreatePaymentTransaction(alice, aliceOutpoint, carol, 100)
		paymentOutpoint := externalapi.NewDomainOutpoint(consensushashing.TransactionID(payment), 0)
		dependent := testutils.CreatePaymentTransaction(bob, paymentOutpoint, carol, 60)

		// The dependent transaction is submitted before its parent, and the
		// double spend bypasses validation
		tc.AddTransaction(dependent)
		tc.AddTransaction(payment)
		tc.AddTransaction(doubleSpend)

		template, err := miningManager.GetBlockTemplate(carol.CoinbaseData([]byte("template")))
		if err != nil {
			t.Fatalf("GetBlockTemplate: %+v", err)
		}
		if len(template.Transactions) != 2 || !contains(payment, template.Transactions) ||
			!contains(dependent, template.Transactions) {
			t.Fatalf("unexpected template transactions: %v", consensushashing.TransactionIDs(template.Transactions))
		}
		if !template.Header.ParentHash.Equal(tc.BestBlockHash()) {
			t.Fatalf("the template does not extend the best block")
		}

		heightBefore := tc.BestHeight()
		if !miningManager.SubmitBlock(template) {
			t.Fatalf("SubmitBlock rejected a block template")
		}
		if tc.BestHeight() != heightBefore+1 {
			t.Fatalf("the submitted template did not become the best block")
		}
		transactionsFromPool := miningManager.AllTransactions()
		if len(transactionsFromPool) != 1 || !contains(doubleSpend, transactionsFromPool) {
			t.Fatalf("expected only the double spend to remain in the pool, got %d transactions",
				len(transactionsFromPool))
		}

		// The remaining transaction now conflicts with the best UTXO set
		emptyTemplate, err := miningManager.GetBlockTemplate(carol.CoinbaseData(nil))
		if err != nil {
			t.Fatalf("GetBlockTemplate: %+v", err)
		}
		if len(emptyTemplate.Transactions) != 0 {
			t.Fatalf("expected an empty template, got %d transactions", len(emptyTemplate.Transactions))
		}
	})
}

func TestSubmitRejectedBlockKeepsPool(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, consensusConfig *consensus.Config) {
		alice := testutils.NewTestKey(1)
		tc, aliceOutpoint, teardown := setupFundedConsensus(t, consensusConfig, "TestSubmitRejectedBlockKeepsPool", alice)
		defer teardown()

		miningManager := miningmanager.NewFactory().NewMiningManager(tc)
		payment := testutils.CreatePaymentTransaction(alice, aliceOutpoint, alice, 100)
		err := miningManager.ValidateAndInsertTransaction(payment)
		if err != nil {
			t.Fatalf("ValidateAndInsertTransaction: %+v", err)
		}

		template, err := miningManager.GetBlockTemplate(alice.CoinbaseData(nil))
		if err != nil {
			t.Fatalf("GetBlockTemplate: %+v", err)
		}
		template.Header.ParentHash = externalapi.NewZeroHash()
		if miningManager.SubmitBlock(template) {
			t.Fatalf("SubmitBlock accepted a block with an unknown parent")
		}
		if len(miningManager.AllTransactions()) != 1 {
			t.Fatalf("a rejected block removed transactions from the pool")
		}
	})
}
