package constants

const (
	// BlockVersion represents the current version of blocks mined and the maximum block version
	// this node is able to validate
	BlockVersion = 1

	// TransactionVersion is the current latest supported transaction version.
	TransactionVersion = 0

	// SompiPerForkCoin is the number of sompi in one coin
	SompiPerForkCoin = 100_000_000

	// MaxSompi is the maximum amount a single output or a sum of outputs
	// may carry
	MaxSompi = 21_000_000 * SompiPerForkCoin

	// DefaultCutoffAge is how far below the best height a block may sit and
	// still be extended
	DefaultCutoffAge = 10

	// DefaultCoinbaseReward is the value of the single output of a coinbase
	DefaultCoinbaseReward = 25 * SompiPerForkCoin
)
