package coinbasemanager

import (
	"encoding/binary"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

var byteOrder = binary.LittleEndian

const uint64Len = 8

// serializeCoinbasePayload builds the coinbase payload: the block height
// followed by the miner's extra data. The height makes coinbases of
// different heights distinct even when they pay the same script.
func serializeCoinbasePayload(height uint64, coinbaseData *externalapi.DomainCoinbaseData) []byte {
	payload := make([]byte, uint64Len+len(coinbaseData.ExtraData))
	byteOrder.PutUint64(payload[:uint64Len], height)
	copy(payload[uint64Len:], coinbaseData.ExtraData)
	return payload
}

// ExtractCoinbaseHeightAndExtraData deserializes a coinbase payload
func ExtractCoinbaseHeightAndExtraData(coinbaseTx *externalapi.DomainTransaction) (height uint64, extraData []byte, err error) {
	if len(coinbaseTx.Payload) < uint64Len {
		return 0, nil, errors.Errorf("coinbase payload is less than the minimum length of %d", uint64Len)
	}
	height = byteOrder.Uint64(coinbaseTx.Payload[:uint64Len])
	extraData = make([]byte, len(coinbaseTx.Payload)-uint64Len)
	copy(extraData, coinbaseTx.Payload[uint64Len:])
	return height, extraData, nil
}
