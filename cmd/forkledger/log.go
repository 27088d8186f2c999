package main

import (
	"github.com/kaspanet/forkledger/infrastructure/logger"
	"github.com/kaspanet/forkledger/util/panics"
)

var log = logger.RegisterSubSystem("FKLD")
var spawn = panics.GoroutineWrapperFunc(log)
