package execenv

import (
	"runtime"
	"runtime/debug"
)

// gcPercent keeps garbage collection frequent, since the retained UTXO sets
// dominate the heap and are released in batches by pruning
const gcPercent = 20

// Initialize initializes the execution environment required to run forkledger
func Initialize() {
	// Use all processor cores.
	runtime.GOMAXPROCS(runtime.NumCPU())

	debug.SetGCPercent(gcPercent)
}
