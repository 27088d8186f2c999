package testutils

import (
	"testing"

	"github.com/kaspanet/forkledger/domain/consensus"
	"github.com/kaspanet/forkledger/domain/dagconfig"
)

// ForAllNets runs the passed testFunc with all available networks
func ForAllNets(t *testing.T, testFunc func(*testing.T, *consensus.Config)) {
	allParams := []dagconfig.Params{
		dagconfig.MainnetParams,
		dagconfig.TestnetParams,
		dagconfig.SimnetParams,
		dagconfig.DevnetParams,
	}

	for _, params := range allParams {
		consensusConfig := consensus.Config{Params: params}
		t.Run(consensusConfig.Name, func(t *testing.T) {
			t.Parallel()
			t.Logf("Running test for %s", consensusConfig.Name)
			testFunc(t, &consensusConfig)
		})
	}
}
