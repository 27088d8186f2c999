package externalapi

import "bytes"

// DomainCoinbaseData contains data by which a coinbase transaction
// is built
type DomainCoinbaseData struct {
	ScriptPublicKey []byte
	ExtraData       []byte
}

// Clone returns a clone of DomainCoinbaseData
func (dcd *DomainCoinbaseData) Clone() *DomainCoinbaseData {
	scriptPubKeyClone := make([]byte, len(dcd.ScriptPublicKey))
	copy(scriptPubKeyClone, dcd.ScriptPublicKey)

	extraDataClone := make([]byte, len(dcd.ExtraData))
	copy(extraDataClone, dcd.ExtraData)

	return &DomainCoinbaseData{
		ScriptPublicKey: scriptPubKeyClone,
		ExtraData:       extraDataClone,
	}
}

// Equal returns whether dcd equals to other
func (dcd *DomainCoinbaseData) Equal(other *DomainCoinbaseData) bool {
	if dcd == nil || other == nil {
		return dcd == other
	}

	return bytes.Equal(dcd.ScriptPublicKey, other.ScriptPublicKey) &&
		bytes.Equal(dcd.ExtraData, other.ExtraData)
}
