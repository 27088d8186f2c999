package ldb

import "github.com/kaspanet/forkledger/infrastructure/logger"

var log = logger.RegisterSubSystem("LVDB")
