package consensus

import "github.com/kaspanet/forkledger/domain/dagconfig"

// Config is a descriptor for the consensus of a single network
type Config struct {
	dagconfig.Params

	// DisablePruning keeps every block and every UTXO set in memory forever
	DisablePruning bool
}
