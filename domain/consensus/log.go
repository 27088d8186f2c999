package consensus

import (
	"github.com/kaspanet/forkledger/infrastructure/logger"
)

var log = logger.RegisterSubSystem("BDAG")
