// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocklogger

import (
	"time"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
)

var (
	receivedLogBlocks int64
	receivedLogTx     int64
	lastBlockLogTime  = time.Now()
)

// LogBlock logs a new block height as an information message
// to show progress to the user. In order to prevent spam, it limits logging to
// one message every 10 seconds with duration and totals included.
//
// LogBlock is not safe for concurrent use.
func LogBlock(block *externalapi.DomainBlock, height uint64) {
	receivedLogBlocks++
	receivedLogTx += int64(len(block.Transactions))

	now := time.Now()
	duration := now.Sub(lastBlockLogTime)
	if duration < time.Second*10 {
		return
	}

	// Truncate the duration to 10s of milliseconds.
	tDuration := duration.Round(10 * time.Millisecond)

	// Log information about new block height.
	blockStr := "blocks"
	if receivedLogBlocks == 1 {
		blockStr = "block"
	}
	txStr := "transactions"
	if receivedLogTx == 1 {
		txStr = "transaction"
	}
	log.Infof("Processed %d %s in the last %s (%d %s, height %d, %s)",
		receivedLogBlocks, blockStr, tDuration, receivedLogTx,
		txStr, height, time.UnixMilli(block.Header.TimeInMilliseconds))

	receivedLogBlocks = 0
	receivedLogTx = 0
	lastBlockLogTime = now
}
