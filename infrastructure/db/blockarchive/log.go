package blockarchive

import "github.com/kaspanet/forkledger/infrastructure/logger"

var log = logger.RegisterSubSystem("ARCH")
