package externalapi

// BlockInfo contains various information about a specific block
type BlockInfo struct {
	Exists     bool
	Height     uint64
	IsBest     bool
	HasUTXOSet bool
}

// Clone returns a clone of BlockInfo
func (bi *BlockInfo) Clone() *BlockInfo {
	return &BlockInfo{
		Exists:     bi.Exists,
		Height:     bi.Height,
		IsBest:     bi.IsBest,
		HasUTXOSet: bi.HasUTXOSet,
	}
}
